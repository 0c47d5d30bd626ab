// Package ledger implements the account vault core: monetary accounts with
// per-variant balance floors, hashed credentials, append-only audit
// histories, and compensated transfers between accounts of one registry.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger owns every account, keyed by its unique number. It is the sole
// mutator of the membership; each account mutates only its own state.
// Registration order is preserved so snapshots come out deterministic.
type Ledger struct {
	order    []string
	byNumber map[string]Account
}

// New returns an empty registry.
func New() *Ledger {
	return &Ledger{byNumber: make(map[string]Account)}
}

// Register adds an account, enforcing number uniqueness.
func (l *Ledger) Register(a Account) error {
	if _, exists := l.byNumber[a.Number()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAccount, a.Number())
	}
	l.byNumber[a.Number()] = a
	l.order = append(l.order, a.Number())
	return nil
}

// Find returns the account with the given number, if registered.
func (l *Ledger) Find(number string) (Account, bool) {
	a, ok := l.byNumber[number]
	return a, ok
}

// Remove deletes an account permanently. There is no soft-delete; callers
// are expected to confirm with the user first.
func (l *Ledger) Remove(number string) error {
	if _, ok := l.byNumber[number]; !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, number)
	}
	delete(l.byNumber, number)
	for i, n := range l.order {
		if n == number {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Accounts returns all accounts in registration order.
func (l *Ledger) Accounts() []Account {
	out := make([]Account, 0, len(l.order))
	for _, n := range l.order {
		out = append(out, l.byNumber[n])
	}
	return out
}

// Len returns the number of registered accounts.
func (l *Ledger) Len() int {
	return len(l.byNumber)
}

// Transfer moves amount between two registered accounts looked up by
// number. It fails with ErrAccountNotFound if either side is missing.
func (l *Ledger) Transfer(amount decimal.Decimal, from, to string) error {
	src, ok := l.byNumber[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, from)
	}
	dst, ok := l.byNumber[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, to)
	}
	return transfer(amount, src, dst)
}
