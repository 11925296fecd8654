// Package payment holds the flat payment record the SOLID lessons share.
//
// The record is data only. Everything that happens to a payment (validation,
// processing, refunds, persistence, notification) lives in the lesson
// packages; keeping behavior out of here is itself the first lesson.
package payment

import "fmt"

// Payment is a flat record: an identifier, an amount in cents, and a
// currency code. Cents avoid float money.
type Payment struct {
	ID          string
	AmountCents int64
	Currency    string
}

// New builds a payment record. No validation happens here; see solid/srp for
// where that responsibility lives.
func New(id string, amountCents int64, currency string) *Payment {
	return &Payment{ID: id, AmountCents: amountCents, Currency: currency}
}

// String implements fmt.Stringer with the short form used in demo output.
func (p *Payment) String() string {
	return fmt.Sprintf("%s %.2f %s", p.ID, float64(p.AmountCents)/100, p.Currency)
}
