package dip

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/grazierShahid/OOP-context/solid/payment"
)

// ErrNilPayment is returned when Save or an Execute method is handed a nil
// record.
var ErrNilPayment = errors.New("dip: nil payment")

// NotFoundError is returned by ByID for an unknown payment ID.
type NotFoundError struct{ ID string }

func (e NotFoundError) Error() string {
	return "dip: payment " + strconv.Quote(e.ID) + " not found"
}

// Store is the in-memory Repository. It is read-your-writes and nothing
// more: no durability, no transactions, no concurrency safety.
type Store struct {
	items map[string]*payment.Payment
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{items: make(map[string]*payment.Payment)}
}

// Save records the payment and returns its ID. An empty ID is defaulted to a
// fresh UUID on the record itself, so caller and store agree on the
// identity. Saving an existing ID overwrites.
func (s *Store) Save(p *payment.Payment) (string, error) {
	if p == nil {
		return "", ErrNilPayment
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.items[p.ID] = p
	return p.ID, nil
}

// ByID returns the payment recorded under id.
func (s *Store) ByID(id string) (*payment.Payment, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	return p, nil
}

// Len reports how many payments are recorded.
func (s *Store) Len() int { return len(s.items) }
