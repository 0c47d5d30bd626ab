package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffre-dev/coffre/internal/money"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewStandard_Validation(t *testing.T) {
	tests := []struct {
		name   string
		owner  string
		number string
		secret string
	}{
		{"empty owner", "", "123", "pw"},
		{"blank owner", "   ", "123", "pw"},
		{"empty number", "Alice", "", "pw"},
		{"empty secret", "Alice", "123", ""},
		{"blank secret", "Alice", "123", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStandard(tt.owner, tt.number, tt.secret, decimal.Zero)
			require.Error(t, err)
		})
	}
}

func TestNewStandard_TrimsFields(t *testing.T) {
	a, err := NewStandard("  Alice  ", " 123 ", "pw", dec("10"))
	require.NoError(t, err)
	assert.Equal(t, "Alice", a.Owner())
	assert.Equal(t, "123", a.Number())
}

func TestNewSavings_RateRange(t *testing.T) {
	_, err := NewSavings("Alice", "123", "pw", decimal.Zero, dec("-0.01"))
	require.Error(t, err)

	_, err = NewSavings("Alice", "123", "pw", decimal.Zero, dec("1.01"))
	require.Error(t, err)

	a, err := NewSavings("Alice", "123", "pw", decimal.Zero, dec("1"))
	require.NoError(t, err)
	assert.True(t, a.Rate().Equal(dec("1")))
}

func TestNewBusiness_LimitRange(t *testing.T) {
	_, err := NewBusiness("Alice", "123", "pw", decimal.Zero, dec("-1"))
	require.Error(t, err)

	a, err := NewBusiness("Alice", "123", "pw", decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, a.OverdraftLimit().IsZero())
}

func TestDepositWithdraw_RoundTrip(t *testing.T) {
	a, err := NewStandard("Alice", "123", "pw", dec("100"))
	require.NoError(t, err)

	require.NoError(t, a.Deposit(dec("25.50")))
	require.NoError(t, a.Withdraw(dec("25.50")))

	assert.True(t, a.Balance().Equal(dec("100")), "balance restored, got %s", a.Balance())
	hist := a.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "deposit", hist[0].Operation)
	assert.Equal(t, "withdrawal", hist[1].Operation)
	assert.Equal(t, "125.50", hist[0].BalanceAfter.StringFixed(2))
	assert.Equal(t, "100.00", hist[1].BalanceAfter.StringFixed(2))
	assert.False(t, hist[0].Date.IsZero())
}

func TestDeposit_InvalidAmount(t *testing.T) {
	a, err := NewStandard("Alice", "123", "pw", dec("100"))
	require.NoError(t, err)

	for _, amt := range []string{"0", "-5"} {
		err := a.Deposit(dec(amt))
		assert.ErrorIs(t, err, money.ErrInvalidAmount, "deposit of %s", amt)
	}
	assert.True(t, a.Balance().Equal(dec("100")))
	assert.Empty(t, a.History(), "failed deposits must not be recorded")
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	a, err := NewStandard("Alice", "123", "pw", dec("100"))
	require.NoError(t, err)

	err = a.Withdraw(dec("150"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, a.Balance().Equal(dec("100")), "balance unchanged after refusal")
	assert.Empty(t, a.History())
}

func TestWithdraw_ToExactlyZero(t *testing.T) {
	a, err := NewStandard("Alice", "123", "pw", dec("100"))
	require.NoError(t, err)

	require.NoError(t, a.Withdraw(dec("100")))
	assert.True(t, a.Balance().IsZero())
}

func TestBusinessWithdraw_Overdraft(t *testing.T) {
	b, err := NewBusiness("Corp", "999", "pw", decimal.Zero, dec("500"))
	require.NoError(t, err)

	// Down to the floor is allowed.
	require.NoError(t, b.Withdraw(dec("500")))
	assert.True(t, b.Balance().Equal(dec("-500")))

	// One cent past the floor is not.
	err = b.Withdraw(dec("0.01"))
	require.ErrorIs(t, err, ErrOverdraftExceeded)
	assert.True(t, b.Balance().Equal(dec("-500")))
	assert.Len(t, b.History(), 1)
}

func TestSavings_ApplyInterest(t *testing.T) {
	s, err := NewSavings("Alice", "123", "pw", dec("1000"), dec("0.02"))
	require.NoError(t, err)

	require.NoError(t, s.ApplyInterest())
	assert.True(t, s.Balance().Equal(dec("1020")), "got %s", s.Balance())

	hist := s.History()
	require.Len(t, hist, 1)
	assert.Equal(t, "interest applied", hist[0].Operation)
	assert.Equal(t, "20.00", hist[0].Amount.StringFixed(2))
}

func TestSavings_ApplyInterest_Rounding(t *testing.T) {
	s, err := NewSavings("Alice", "123", "pw", dec("100.33"), dec("0.015"))
	require.NoError(t, err)

	// 100.33 * 0.015 = 1.50495, rounded to 1.50.
	require.NoError(t, s.ApplyInterest())
	assert.True(t, s.Balance().Equal(dec("101.83")), "got %s", s.Balance())
}

func TestSavings_ApplyInterest_ZeroIsNoop(t *testing.T) {
	s, err := NewSavings("Alice", "123", "pw", decimal.Zero, dec("0.02"))
	require.NoError(t, err)

	require.NoError(t, s.ApplyInterest())
	assert.True(t, s.Balance().IsZero())
	assert.Empty(t, s.History(), "no entry for zero interest")
}

func TestVerify(t *testing.T) {
	a, err := NewStandard("Alice", "123", "secret", decimal.Zero)
	require.NoError(t, err)

	assert.True(t, a.Verify("secret"))
	assert.False(t, a.Verify("wrong"))
	assert.False(t, a.Verify(""))
}

func TestDescribe(t *testing.T) {
	std, err := NewStandard("Alice", "123", "pw", dec("100"))
	require.NoError(t, err)
	assert.Equal(t, "Standard(123) | Owner: Alice | Balance: 100.00 €", std.Describe())

	sav, err := NewSavings("Bob", "456", "pw", dec("1000"), dec("0.02"))
	require.NoError(t, err)
	assert.Equal(t, "Savings(456) | Owner: Bob | Balance: 1000.00 € | Rate: 2.00 %", sav.Describe())

	biz, err := NewBusiness("Corp", "789", "pw", dec("-120.50"), dec("500"))
	require.NoError(t, err)
	assert.Equal(t, "Business(789) | Owner: Corp | Balance: -120.50 € | Overdraft: 500.00 €", biz.Describe())
}

func TestRestore_KeepsHashAndHistory(t *testing.T) {
	orig, err := NewStandard("Alice", "123", "pw", dec("50"))
	require.NoError(t, err)
	require.NoError(t, orig.Deposit(dec("10")))

	restored, err := RestoreStandard(orig.Owner(), orig.Number(), orig.Credential(), orig.Balance(), orig.History())
	require.NoError(t, err)

	assert.True(t, restored.Verify("pw"), "restored credential must not be re-hashed")
	assert.True(t, restored.Balance().Equal(dec("60")))
	require.Len(t, restored.History(), 1)
	assert.Equal(t, "deposit", restored.History()[0].Operation)
}

func TestFloorInvariant_MixedSequence(t *testing.T) {
	// Whatever mix of accepted and refused calls runs, a Standard balance
	// never ends up negative and a Business balance never goes below
	// its overdraft floor.
	std, err := NewStandard("Alice", "1", "pw", dec("30"))
	require.NoError(t, err)
	biz, err := NewBusiness("Corp", "2", "pw", dec("30"), dec("100"))
	require.NoError(t, err)

	amounts := []string{"10", "45", "5", "120", "60", "0.01"}
	for _, amt := range amounts {
		_ = std.Withdraw(dec(amt))
		_ = biz.Withdraw(dec(amt))
		_ = std.Deposit(dec("3"))
		_ = biz.Deposit(dec("3"))

		assert.False(t, std.Balance().IsNegative(), "standard balance went negative: %s", std.Balance())
		assert.True(t, biz.Balance().GreaterThanOrEqual(dec("-100")), "business balance past floor: %s", biz.Balance())
	}
}
