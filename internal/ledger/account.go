package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coffre-dev/coffre/internal/money"
)

// Kind discriminates the account variants in snapshots and summaries.
type Kind string

const (
	KindStandard Kind = "Standard"
	KindSavings  Kind = "Savings"
	KindBusiness Kind = "Business"
)

// Account is the closed set of vault account variants. The unexported
// method keeps implementations inside this package, which the transfer
// protocol relies on to reach the history for relabeling and compensation.
type Account interface {
	Owner() string
	Number() string
	Balance() decimal.Decimal
	History() []Entry
	Kind() Kind

	// Deposit credits a strictly positive amount and records it.
	Deposit(amount decimal.Decimal) error
	// Withdraw debits a strictly positive amount, subject to the
	// variant's balance floor.
	Withdraw(amount decimal.Decimal) error
	// Verify reports whether candidate matches the account secret.
	// It never mutates and never reveals the stored hash.
	Verify(candidate string) bool
	// Describe returns the one-line summary shown by display layers.
	Describe() string
	// Credential exposes the stored hash for the snapshot codec.
	Credential() Credential

	base() *account
}

// account carries the state shared by every variant. Each account is the
// sole mutator of its own balance and history, and every operation
// validates its inputs before touching either.
type account struct {
	owner   string
	number  string
	cred    Credential
	balance decimal.Decimal
	hist    history
}

func newAccount(owner, number string, cred Credential, balance decimal.Decimal) (account, error) {
	owner = strings.TrimSpace(owner)
	number = strings.TrimSpace(number)
	if owner == "" {
		return account{}, fmt.Errorf("owner must be a non-empty name")
	}
	if number == "" {
		return account{}, fmt.Errorf("account number must be non-empty")
	}
	if cred.Hash() == "" {
		return account{}, fmt.Errorf("credential must be set")
	}
	return account{owner: owner, number: number, cred: cred, balance: balance}, nil
}

func credentialFor(secret string) (Credential, error) {
	if strings.TrimSpace(secret) == "" {
		return Credential{}, fmt.Errorf("secret must be non-empty")
	}
	return CredentialFromSecret(secret), nil
}

func (a *account) Owner() string            { return a.owner }
func (a *account) Number() string           { return a.number }
func (a *account) Balance() decimal.Decimal { return a.balance }
func (a *account) History() []Entry         { return a.hist.all() }
func (a *account) Credential() Credential   { return a.cred }

func (a *account) Verify(candidate string) bool {
	return a.cred.Verify(candidate)
}

// Deposit fails only on an invalid amount, leaving state untouched.
func (a *account) Deposit(amount decimal.Decimal) error {
	if err := money.CheckPositive(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	a.hist.record(opDeposit, amount, a.balance)
	return nil
}

// debit applies an already-validated withdrawal.
func (a *account) debit(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
	a.hist.record(opWithdrawal, amount, a.balance)
}

func (a *account) base() *account { return a }

// Standard is the plain account: the balance may never go below zero.
type Standard struct {
	account
}

// NewStandard creates a Standard account with a freshly hashed secret.
func NewStandard(owner, number, secret string, balance decimal.Decimal) (*Standard, error) {
	cred, err := credentialFor(secret)
	if err != nil {
		return nil, err
	}
	return RestoreStandard(owner, number, cred, balance, nil)
}

// RestoreStandard rebuilds a Standard account from persisted state. The
// credential is taken as-is, so snapshot reloads do not hash twice.
func RestoreStandard(owner, number string, cred Credential, balance decimal.Decimal, entries []Entry) (*Standard, error) {
	base, err := newAccount(owner, number, cred, balance)
	if err != nil {
		return nil, err
	}
	base.hist.entries = append(base.hist.entries, entries...)
	return &Standard{account: base}, nil
}

func (s *Standard) Kind() Kind { return KindStandard }

func (s *Standard) Withdraw(amount decimal.Decimal) error {
	if err := money.CheckPositive(amount); err != nil {
		return err
	}
	if s.balance.Sub(amount).IsNegative() {
		return fmt.Errorf("%w: balance %s, withdrawal of %s requested",
			ErrInsufficientFunds, money.Format(s.balance), money.Format(amount))
	}
	s.debit(amount)
	return nil
}

func (s *Standard) Describe() string {
	return fmt.Sprintf("Standard(%s) | Owner: %s | Balance: %s",
		s.number, s.owner, money.Format(s.balance))
}

// Savings accrues interest on demand; same zero floor as Standard.
type Savings struct {
	Standard
	rate decimal.Decimal
}

// NewSavings creates a Savings account. The rate is a fraction in [0, 1].
func NewSavings(owner, number, secret string, balance, rate decimal.Decimal) (*Savings, error) {
	cred, err := credentialFor(secret)
	if err != nil {
		return nil, err
	}
	return RestoreSavings(owner, number, cred, balance, rate, nil)
}

// RestoreSavings rebuilds a Savings account from persisted state.
func RestoreSavings(owner, number string, cred Credential, balance, rate decimal.Decimal, entries []Entry) (*Savings, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("interest rate must be between 0 and 1, got %s", rate)
	}
	std, err := RestoreStandard(owner, number, cred, balance, entries)
	if err != nil {
		return nil, err
	}
	return &Savings{Standard: *std, rate: rate}, nil
}

func (s *Savings) Kind() Kind { return KindSavings }

// Rate returns the interest rate as a fraction.
func (s *Savings) Rate() decimal.Decimal { return s.rate }

// ApplyInterest deposits the balance times the rate, rounded to the cent,
// and relabels the resulting entry. Zero or negative computed interest is
// a no-op with no history entry.
func (s *Savings) ApplyInterest() error {
	interest := money.Round(s.balance.Mul(s.rate))
	if !interest.IsPositive() {
		return nil
	}
	if err := s.Deposit(interest); err != nil {
		return err
	}
	s.hist.relabelLast(opInterest)
	return nil
}

func (s *Savings) Describe() string {
	return fmt.Sprintf("Savings(%s) | Owner: %s | Balance: %s | Rate: %s %%",
		s.number, s.owner, money.Format(s.balance),
		s.rate.Mul(decimal.NewFromInt(100)).StringFixed(2))
}

// Business may run a negative balance down to its authorized overdraft.
type Business struct {
	account
	limit decimal.Decimal
}

// NewBusiness creates a Business account. The limit is the non-negative
// amount the balance may go below zero.
func NewBusiness(owner, number, secret string, balance, limit decimal.Decimal) (*Business, error) {
	cred, err := credentialFor(secret)
	if err != nil {
		return nil, err
	}
	return RestoreBusiness(owner, number, cred, balance, limit, nil)
}

// RestoreBusiness rebuilds a Business account from persisted state.
func RestoreBusiness(owner, number string, cred Credential, balance, limit decimal.Decimal, entries []Entry) (*Business, error) {
	if limit.IsNegative() {
		return nil, fmt.Errorf("overdraft limit must be zero or positive, got %s", limit)
	}
	base, err := newAccount(owner, number, cred, balance)
	if err != nil {
		return nil, err
	}
	base.hist.entries = append(base.hist.entries, entries...)
	return &Business{account: base, limit: limit}, nil
}

func (b *Business) Kind() Kind { return KindBusiness }

// OverdraftLimit returns the authorized overdraft.
func (b *Business) OverdraftLimit() decimal.Decimal { return b.limit }

func (b *Business) Withdraw(amount decimal.Decimal) error {
	if err := money.CheckPositive(amount); err != nil {
		return err
	}
	if b.balance.Sub(amount).LessThan(b.limit.Neg()) {
		return fmt.Errorf("%w: authorized overdraft %s, balance %s, withdrawal of %s requested",
			ErrOverdraftExceeded, money.Format(b.limit), money.Format(b.balance), money.Format(amount))
	}
	b.debit(amount)
	return nil
}

func (b *Business) Describe() string {
	return fmt.Sprintf("Business(%s) | Owner: %s | Balance: %s | Overdraft: %s",
		b.number, b.owner, money.Format(b.balance), money.Format(b.limit))
}
