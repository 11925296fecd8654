package ocp

import (
	"errors"

	"github.com/grazierShahid/OOP-context/solid/payment"
)

var (
	// ErrNilPayment is returned when a processor is given a nil record.
	ErrNilPayment = errors.New("ocp: nil payment")

	// ErrNoProcessor is returned by a Terminal built without a processor.
	ErrNoProcessor = errors.New("ocp: no processor wired")
)

// Processor is the extension point. A new payment method is a new
// implementation of this interface and nothing more.
type Processor interface {
	// Process attempts the payment and reports whether it was accepted.
	// A false with a nil error is a decline, not a failure.
	Process(p *payment.Payment) (bool, error)
}

// CreditCard processes card payments. A positive limit declines anything
// above it.
type CreditCard struct {
	LimitCents int64
}

// Process accepts any positive amount within the limit.
func (c CreditCard) Process(p *payment.Payment) (bool, error) {
	if p == nil {
		return false, ErrNilPayment
	}
	if p.AmountCents <= 0 {
		return false, nil
	}
	if c.LimitCents > 0 && p.AmountCents > c.LimitCents {
		return false, nil
	}
	return true, nil
}

// PayPal processes wallet payments. No limit, but the record needs an ID the
// wallet can reference.
type PayPal struct{}

// Process accepts any identified positive amount.
func (PayPal) Process(p *payment.Payment) (bool, error) {
	if p == nil {
		return false, ErrNilPayment
	}
	return p.ID != "" && p.AmountCents > 0, nil
}

// Terminal is the module that stays closed. It depends on Processor only and
// is never edited when a payment method is added.
type Terminal struct {
	processor Processor
}

// NewTerminal builds a terminal around any processor.
func NewTerminal(p Processor) *Terminal { return &Terminal{processor: p} }

// Charge runs the payment through whatever processor the terminal holds.
func (t *Terminal) Charge(p *payment.Payment) (bool, error) {
	if t.processor == nil {
		return false, ErrNoProcessor
	}
	return t.processor.Process(p)
}
