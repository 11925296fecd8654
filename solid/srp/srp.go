package srp

import (
	"errors"
	"fmt"

	"github.com/grazierShahid/OOP-context/solid/payment"
)

var (
	// ErrNilPayment is returned when a nil record is handed to any of the
	// types here.
	ErrNilPayment = errors.New("srp: nil payment")

	// ErrMissingID is returned by Validator for a record without an ID.
	ErrMissingID = errors.New("srp: payment ID is empty")

	// ErrNonPositiveAmount is returned by Validator for a zero or negative
	// amount.
	ErrNonPositiveAmount = errors.New("srp: amount must be positive")

	// ErrBadCurrency is returned by Validator for a currency code that is
	// not three uppercase ASCII letters.
	ErrBadCurrency = errors.New("srp: currency must be a 3-letter code")
)

// validCurrency checks for exactly three uppercase ASCII letters. len alone
// would count bytes and wave through multi-byte runes and digits.
func validCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// Validator owns one decision: is this record acceptable. Rule changes land
// here and nowhere else.
type Validator struct{}

// Validate checks the record and returns the first violation found.
func (Validator) Validate(p *payment.Payment) error {
	if p == nil {
		return ErrNilPayment
	}
	if p.ID == "" {
		return ErrMissingID
	}
	if p.AmountCents <= 0 {
		return ErrNonPositiveAmount
	}
	if !validCurrency(p.Currency) {
		return ErrBadCurrency
	}
	return nil
}

// ReceiptFormatter owns presentation. Layout changes land here.
type ReceiptFormatter struct{}

// Receipt renders the one-line receipt for a record.
func (ReceiptFormatter) Receipt(p *payment.Payment) (string, error) {
	if p == nil {
		return "", ErrNilPayment
	}
	return fmt.Sprintf("receipt %s: %.2f %s", p.ID, float64(p.AmountCents)/100, p.Currency), nil
}

// Ledger owns book-keeping: which payments were recorded and what they sum
// to. It is in-memory and append-only.
type Ledger struct {
	entries []*payment.Payment
}

// NewLedger builds an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Record appends a payment to the book.
func (l *Ledger) Record(p *payment.Payment) error {
	if p == nil {
		return ErrNilPayment
	}
	l.entries = append(l.entries, p)
	return nil
}

// Len reports how many payments were recorded.
func (l *Ledger) Len() int { return len(l.entries) }

// TotalCents sums the recorded amounts. Mixed currencies are the caller's
// problem; the ledger only keeps the book.
func (l *Ledger) TotalCents() int64 {
	var total int64
	for _, p := range l.entries {
		total += p.AmountCents
	}
	return total
}
