package dip

import "github.com/grazierShahid/OOP-context/solid/payment"

// Processor is what the service needs from a payment method. ocp.CreditCard
// and ocp.PayPal satisfy it without knowing this package exists.
type Processor interface {
	Process(p *payment.Payment) (bool, error)
}

// Notifier is what the service needs from a messaging channel. Satisfied by
// the isp notifiers.
type Notifier interface {
	Notify(message string) error
}

// Logger is what the audited service needs from a log. Satisfied by
// isp.WriterLogger.
type Logger interface {
	Info(message string)
	Error(message string)
}

// Repository is what the audited service needs from storage. Satisfied by
// Store in this package.
type Repository interface {
	Save(p *payment.Payment) (string, error)
	ByID(id string) (*payment.Payment, error)
}

// NotWiredError reports a port the composition root forgot to fill.
type NotWiredError struct{ Port string }

func (e NotWiredError) Error() string { return "dip: " + e.Port + " not wired" }

// Service executes payments through its ports. Fields are exported so the
// composition root (or an injector) can bind them; the service itself never
// constructs a concrete dependency.
type Service struct {
	Processor Processor
	Notifier  Notifier
}

// NewService builds a service with both ports filled.
func NewService(processor Processor, notifier Notifier) *Service {
	return &Service{Processor: processor, Notifier: notifier}
}

// Execute runs the payment and notifies the outcome. The notification is
// best-effort: a notifier failure does not undo an accepted payment.
func (s *Service) Execute(p *payment.Payment) (bool, error) {
	if p == nil {
		return false, ErrNilPayment
	}
	if s.Processor == nil {
		return false, NotWiredError{Port: "processor"}
	}
	if s.Notifier == nil {
		return false, NotWiredError{Port: "notifier"}
	}

	ok, err := s.Processor.Process(p)
	if err != nil {
		return false, err
	}
	if ok {
		_ = s.Notifier.Notify("payment successful: " + p.ID)
	} else {
		_ = s.Notifier.Notify("payment failed: " + p.ID)
	}
	return ok, nil
}

// AuditedService embeds Service and adds the logging and persistence ports.
// Execute is overridden to record accepted payments and narrate the flow.
type AuditedService struct {
	Service
	Logger     Logger
	Repository Repository
}

// NewAuditedService builds an audited service with all four ports filled.
func NewAuditedService(processor Processor, notifier Notifier, logger Logger, repo Repository) *AuditedService {
	return &AuditedService{
		Service:    Service{Processor: processor, Notifier: notifier},
		Logger:     logger,
		Repository: repo,
	}
}

// Execute overrides Service.Execute: same flow plus logging and, on
// acceptance, persistence. A repository failure after an accepted payment is
// a real error; the payment went through but the audit trail did not.
func (s *AuditedService) Execute(p *payment.Payment) (bool, error) {
	if p == nil {
		return false, ErrNilPayment
	}
	if s.Logger == nil {
		return false, NotWiredError{Port: "logger"}
	}
	if s.Repository == nil {
		return false, NotWiredError{Port: "repository"}
	}

	s.Logger.Info("processing payment: " + p.ID)

	ok, err := s.Service.Execute(p)
	if err != nil {
		s.Logger.Error("payment error: " + err.Error())
		return false, err
	}
	if !ok {
		s.Logger.Error("payment declined: " + p.ID)
		return false, nil
	}

	if _, err := s.Repository.Save(p); err != nil {
		s.Logger.Error("recording payment: " + err.Error())
		return true, err
	}
	s.Logger.Info("payment completed: " + p.ID)
	return true, nil
}
