package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// transfer moves amount from src to dst without a shared transaction log:
// withdraw from the source, then deposit into the destination, undoing the
// withdrawal by hand if the deposit is refused. This is only correct while
// a single caller serializes all mutations; concurrent use would need
// per-account locks taken in a fixed order (say ascending number) across
// the whole exchange, or a real transaction log.
func transfer(amount decimal.Decimal, src, dst Account) error {
	if src.Number() == dst.Number() {
		return fmt.Errorf("%w: %q", ErrSelfTransfer, src.Number())
	}

	if err := src.Withdraw(amount); err != nil {
		return err
	}
	src.base().hist.relabelLast("transfer sent to " + dst.Number())

	if err := dst.Deposit(amount); err != nil {
		// Compensate: re-credit the source without a new entry and drop
		// the withdrawal entry, restoring the pre-call state exactly.
		s := src.base()
		s.balance = s.balance.Add(amount)
		s.hist.truncateLast()
		return err
	}
	dst.base().hist.relabelLast("transfer received from " + src.Number())
	return nil
}
