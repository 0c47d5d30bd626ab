package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coffre-dev/coffre/internal/money"
)

// Operation labels recorded in account histories.
const (
	opDeposit    = "deposit"
	opWithdrawal = "withdrawal"
	opInterest   = "interest applied"
)

// Entry is one line of an account's audit history, immutable once recorded.
type Entry struct {
	Date         time.Time
	Operation    string
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// history is the append-only log owned by a single account. Besides append,
// the only permitted mutations are relabeling the latest entry (transfers
// and interest) and dropping it again during transfer compensation.
type history struct {
	entries []Entry
}

// record appends an entry for a completed operation.
func (h *history) record(op string, amount, balanceAfter decimal.Decimal) {
	h.entries = append(h.entries, Entry{
		Date:         time.Now().Truncate(time.Second),
		Operation:    op,
		Amount:       money.Round(amount),
		BalanceAfter: money.Round(balanceAfter),
	})
}

// relabelLast rewrites the operation label of the most recent entry.
func (h *history) relabelLast(op string) {
	if len(h.entries) == 0 {
		return
	}
	h.entries[len(h.entries)-1].Operation = op
}

// truncateLast drops the most recent entry. Only the transfer protocol's
// compensation path uses it.
func (h *history) truncateLast() {
	if len(h.entries) == 0 {
		return
	}
	h.entries = h.entries[:len(h.entries)-1]
}

// all returns a copy so callers cannot mutate the log.
func (h *history) all() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}
