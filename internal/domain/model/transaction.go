package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds the rules understand. Other kinds are kept verbatim
// and simply never match direction-specific rules.
const (
	KindIn  = "in"
	KindOut = "out"
)

// Transaction is an immutable wallet transaction. Fields are unexported to
// enforce immutability; use the With* methods to derive modified copies.
type Transaction struct {
	timestamp    time.Time
	amount       decimal.Decimal
	kind         string
	destination  string
	hasTimestamp bool
}

// NewTransaction builds a Transaction without a timestamp. Negative amounts
// are clamped to zero.
func NewTransaction(amount decimal.Decimal, kind, destination string) Transaction {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return Transaction{
		amount:      amount,
		kind:        kind,
		destination: destination,
	}
}

// WithTimestamp returns a copy of the transaction carrying ts.
// A zero ts clears the timestamp.
func (t Transaction) WithTimestamp(ts time.Time) Transaction {
	t.timestamp = ts
	t.hasTimestamp = !ts.IsZero()
	return t
}

func (t Transaction) Amount() decimal.Decimal { return t.amount }
func (t Transaction) Kind() string            { return t.kind }
func (t Transaction) Destination() string     { return t.destination }

// Timestamp returns the transaction time and whether one was recorded.
func (t Transaction) Timestamp() (time.Time, bool) {
	return t.timestamp, t.hasTimestamp
}

// IsOutbound reports whether the transaction moves funds out of the wallet.
func (t Transaction) IsOutbound() bool {
	return t.kind == KindOut
}
