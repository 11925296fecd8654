package lsp

import (
	"errors"

	"github.com/grazierShahid/OOP-context/solid/payment"
)

var (
	// ErrNilPayment is returned for a nil record.
	ErrNilPayment = errors.New("lsp: nil payment")

	// ErrInvalidAmount is returned for a zero or negative refund amount.
	ErrInvalidAmount = errors.New("lsp: refund amount must be positive")

	// ErrExceedsPayment is returned when the refund is larger than the
	// original payment. Every Refunder returns it; none caps instead.
	ErrExceedsPayment = errors.New("lsp: refund exceeds payment amount")
)

// Refunder refunds part or all of a payment.
//
// Contract, binding on every implementation:
//   - nil payment: ErrNilPayment
//   - amountCents <= 0: ErrInvalidAmount
//   - amountCents > p.AmountCents: ErrExceedsPayment
//   - otherwise: (true, nil)
type Refunder interface {
	Refund(p *payment.Payment, amountCents int64) (bool, error)
}

// checkRefund is the shared contract check. Implementations differ in
// channel, not in contract.
func checkRefund(p *payment.Payment, amountCents int64) error {
	if p == nil {
		return ErrNilPayment
	}
	if amountCents <= 0 {
		return ErrInvalidAmount
	}
	if amountCents > p.AmountCents {
		return ErrExceedsPayment
	}
	return nil
}

// CardRefunder puts the money back on the card.
type CardRefunder struct{}

// Refund implements Refunder.
func (CardRefunder) Refund(p *payment.Payment, amountCents int64) (bool, error) {
	if err := checkRefund(p, amountCents); err != nil {
		return false, err
	}
	return true, nil
}

// PayPalRefunder returns the money to the wallet.
type PayPalRefunder struct{}

// Refund implements Refunder.
func (PayPalRefunder) Refund(p *payment.Payment, amountCents int64) (bool, error) {
	if err := checkRefund(p, amountCents); err != nil {
		return false, err
	}
	return true, nil
}

// StoreCreditRefunder issues store credit. Credit may be cheap to mint, but
// the contract still binds: no over-refunds.
type StoreCreditRefunder struct{}

// Refund implements Refunder.
func (StoreCreditRefunder) Refund(p *payment.Payment, amountCents int64) (bool, error) {
	if err := checkRefund(p, amountCents); err != nil {
		return false, err
	}
	return true, nil
}

// RefundAll drains the payment through whichever refunder it is given. It
// compiles and behaves identically for every implementation; that is the
// substitution property in one function.
func RefundAll(r Refunder, p *payment.Payment) (bool, error) {
	if p == nil {
		return false, ErrNilPayment
	}
	return r.Refund(p, p.AmountCents)
}
