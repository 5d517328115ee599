package recruit

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrMissingFields = errors.New("name, email, position and motivation are required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrBadResumeType = errors.New("only PDF, JPG, JPEG, PNG, GIF or WEBP files are allowed")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(a Application) (Application, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Motivation = strings.TrimSpace(a.Motivation)

	if a.Name == "" || a.Email == "" || a.PositionID <= 0 || a.Motivation == "" {
		return Application{}, ErrMissingFields
	}
	if !strings.Contains(a.Email, "@") {
		return Application{}, ErrInvalidEmail
	}

	return s.repo.Save(a)
}

func (s *Service) List() ([]Application, error) {
	return s.repo.List()
}

// AllowedResume reports whether the uploaded resume filename carries an
// accepted extension.
func AllowedResume(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedResumeExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
