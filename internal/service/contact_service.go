package service

import (
	"context"
	"time"

	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/logger"
)

// contactPageSize is the admin inbox page size
const contactPageSize = 20

// Mailer forwards a contact message to the site owner. The delivery
// provider is an external collaborator; failures never block intake.
type Mailer interface {
	Send(ctx context.Context, message *domain.ContactMessage) error
}

// LogMailer logs messages instead of delivering them (default wiring
// until a provider is configured)
type LogMailer struct{}

// Send logs the message
func (LogMailer) Send(_ context.Context, message *domain.ContactMessage) error {
	logger.GetLogger().Info().
		Str("from", message.Email).
		Str("subject", message.Subject).
		Msg("contact message received")
	return nil
}

// ContactService handles contact-form intake and the admin inbox
type ContactService interface {
	Submit(ctx context.Context, req *domain.ContactRequest) (*domain.ContactMessage, error)
	List(page int) ([]*domain.ContactMessage, int64, error)
	MarkRead(id uint) error
}

type contactService struct {
	repo   repository.ContactRepository
	mailer Mailer
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository, mailer Mailer) ContactService {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &contactService{repo: repo, mailer: mailer}
}

// Submit validates, persists, and best-effort forwards a message
func (s *contactService) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.ContactMessage, error) {
	message := &domain.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(message); err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, message); err != nil {
		logger.Warn("contact mail delivery failed: %v", err)
	}
	return message, nil
}

// List returns a page of messages plus the total count
func (s *contactService) List(page int) ([]*domain.ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, 0, err
	}

	messages, err := s.repo.List((page-1)*contactPageSize, contactPageSize)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// MarkRead flags a message as read
func (s *contactService) MarkRead(id uint) error {
	return s.repo.MarkRead(id)
}
