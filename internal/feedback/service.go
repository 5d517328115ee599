package feedback

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields = errors.New("name, email and message are required")
	ErrInvalidEmail  = errors.New("invalid email address")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit validates and stores one support-form submission.
func (s *Service) Submit(f Feedback) (Feedback, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)

	if f.Name == "" || f.Email == "" || f.Message == "" {
		return Feedback{}, ErrMissingFields
	}
	if !strings.Contains(f.Email, "@") || strings.HasPrefix(f.Email, "@") || strings.HasSuffix(f.Email, "@") {
		return Feedback{}, ErrInvalidEmail
	}

	return s.repo.Save(f)
}

func (s *Service) List() ([]Feedback, error) {
	return s.repo.List()
}
