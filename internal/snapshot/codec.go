// Package snapshot serializes a ledger's full account set to an ordered,
// durable JSON representation and rebuilds it, hash and histories intact.
package snapshot

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coffre-dev/coffre/internal/ledger"
	"github.com/coffre-dev/coffre/internal/money"
)

// Codec errors. A load fails as a whole: no partial ledger is ever returned.
var (
	// ErrUnknownAccountType means a record carries an unrecognized type tag.
	ErrUnknownAccountType = errors.New("unknown account type")

	// ErrMalformedRecord means a record is missing or has invalid
	// required fields.
	ErrMalformedRecord = errors.New("malformed account record")
)

// dateFormat is ISO-8601 with seconds precision, matching history entries.
const dateFormat = "2006-01-02T15:04:05"

// Defaults applied when an older snapshot omits a variant field.
var (
	defaultInterestRate   = decimal.RequireFromString("0.01")
	defaultOverdraftLimit = decimal.RequireFromString("500")
)

// Record is one serialized account. Amounts travel as fixed two-decimal
// strings so the representation round-trips to the cent.
type Record struct {
	Type           string        `json:"type"`
	Owner          string        `json:"owner"`
	Number         string        `json:"number"`
	CredentialHash string        `json:"credential_hash"`
	Balance        string        `json:"balance"`
	History        []EntryRecord `json:"history"`
	InterestRate   string        `json:"interest_rate,omitempty"`
	OverdraftLimit string        `json:"overdraft_limit,omitempty"`
}

// EntryRecord is one serialized history line.
type EntryRecord struct {
	Date         string `json:"date"`
	Operation    string `json:"operation"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balance_after"`
}

// Marshal converts a ledger to snapshot records in registration order.
func Marshal(l *ledger.Ledger) []Record {
	accounts := l.Accounts()
	records := make([]Record, 0, len(accounts))
	for _, a := range accounts {
		records = append(records, marshalAccount(a))
	}
	return records
}

func marshalAccount(a ledger.Account) Record {
	rec := Record{
		Type:           string(a.Kind()),
		Owner:          a.Owner(),
		Number:         a.Number(),
		CredentialHash: a.Credential().Hash(),
		Balance:        money.Round(a.Balance()).StringFixed(2),
		History:        marshalHistory(a.History()),
	}
	switch v := a.(type) {
	case *ledger.Savings:
		rec.InterestRate = v.Rate().String()
	case *ledger.Business:
		rec.OverdraftLimit = v.OverdraftLimit().StringFixed(2)
	}
	return rec
}

func marshalHistory(entries []ledger.Entry) []EntryRecord {
	out := make([]EntryRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryRecord{
			Date:         e.Date.Format(dateFormat),
			Operation:    e.Operation,
			Amount:       e.Amount.StringFixed(2),
			BalanceAfter: e.BalanceAfter.StringFixed(2),
		})
	}
	return out
}

// Unmarshal rebuilds a ledger from records, preserving record order. Any
// bad record fails the whole load.
func Unmarshal(records []Record) (*ledger.Ledger, error) {
	l := ledger.New()
	for i, rec := range records {
		a, err := unmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, rec.Number, err)
		}
		if err := l.Register(a); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return l, nil
}

func unmarshalAccount(rec Record) (ledger.Account, error) {
	if rec.Owner == "" || rec.Number == "" {
		return nil, fmt.Errorf("%w: owner and number are required", ErrMalformedRecord)
	}
	if rec.CredentialHash == "" {
		return nil, fmt.Errorf("%w: missing credential_hash", ErrMalformedRecord)
	}
	balance, err := money.Parse(rec.Balance)
	if err != nil {
		return nil, fmt.Errorf("%w: balance: %v", ErrMalformedRecord, err)
	}
	entries, err := unmarshalHistory(rec.History)
	if err != nil {
		return nil, err
	}
	cred := ledger.CredentialFromHash(rec.CredentialHash)

	switch ledger.Kind(rec.Type) {
	case ledger.KindStandard:
		a, err := ledger.RestoreStandard(rec.Owner, rec.Number, cred, balance, entries)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		return a, nil
	case ledger.KindSavings:
		rate := defaultInterestRate
		if rec.InterestRate != "" {
			rate, err = decimal.NewFromString(rec.InterestRate)
			if err != nil {
				return nil, fmt.Errorf("%w: interest_rate %q", ErrMalformedRecord, rec.InterestRate)
			}
		}
		a, err := ledger.RestoreSavings(rec.Owner, rec.Number, cred, balance, rate, entries)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		return a, nil
	case ledger.KindBusiness:
		limit := defaultOverdraftLimit
		if rec.OverdraftLimit != "" {
			limit, err = decimal.NewFromString(rec.OverdraftLimit)
			if err != nil {
				return nil, fmt.Errorf("%w: overdraft_limit %q", ErrMalformedRecord, rec.OverdraftLimit)
			}
		}
		a, err := ledger.RestoreBusiness(rec.Owner, rec.Number, cred, balance, limit, entries)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountType, rec.Type)
	}
}

func unmarshalHistory(records []EntryRecord) ([]ledger.Entry, error) {
	entries := make([]ledger.Entry, 0, len(records))
	for i, er := range records {
		// Entry dates carry no zone; they are wall-clock local times.
		date, err := time.ParseInLocation(dateFormat, er.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: history entry %d: date %q", ErrMalformedRecord, i, er.Date)
		}
		amount, err := money.Parse(er.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: history entry %d: amount: %v", ErrMalformedRecord, i, err)
		}
		after, err := money.Parse(er.BalanceAfter)
		if err != nil {
			return nil, fmt.Errorf("%w: history entry %d: balance_after: %v", ErrMalformedRecord, i, err)
		}
		if er.Operation == "" {
			return nil, fmt.Errorf("%w: history entry %d: missing operation", ErrMalformedRecord, i)
		}
		entries = append(entries, ledger.Entry{
			Date:         date,
			Operation:    er.Operation,
			Amount:       amount,
			BalanceAfter: after,
		})
	}
	return entries, nil
}
