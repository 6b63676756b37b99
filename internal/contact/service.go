package contact

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service accepts contact inquiries. Accepted inquiries are logged and
// acknowledged; nothing is stored or forwarded.
type Service struct {
	validate *validator.Validate
	logger   logrus.FieldLogger
	now      func() time.Time
}

// NewService creates a contact service that accepts the given project names.
func NewService(logger logrus.FieldLogger, projects []string) *Service {
	return &Service{
		validate: newValidator(projects),
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates the inquiry and, when it passes, logs it under a fresh
// reference. Validation failures are reported as ValidationErrors.
func (s *Service) Submit(ctx context.Context, in Inquiry) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	in = in.Normalize()
	if errs := validateStruct(s.validate, in); len(errs) > 0 {
		return Receipt{}, errs
	}

	receipt := Receipt{
		Reference:  uuid.NewString(),
		ReceivedAt: s.now().UTC(),
	}
	s.logger.WithFields(logrus.Fields{
		"reference": receipt.Reference,
		"name":      in.Name,
		"email":     in.Email,
		"phone":     in.Phone,
		"project":   in.Project,
		"subject":   in.Subject,
		"message":   in.Message,
	}).Info("contact inquiry received")
	return receipt, nil
}
