package user

import (
	"path/filepath"
	"time"

	"github.com/snackshop/snack-shop-backend/internal/storage"
)

// JSONRepository persists accounts in {"users":[...]} with the data files'
// usual max-plus-one id scheme.
type JSONRepository struct {
	path string
}

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{path: filepath.Join(dataDir, "users.json")}
}

func (r *JSONRepository) load() []User {
	users := make([]User, 0)
	if err := storage.LoadRecords(r.path, "users", &users); err != nil {
		return []User{}
	}
	return users
}

func (r *JSONRepository) GetByID(id int) (User, error) {
	for _, u := range r.load() {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *JSONRepository) GetByEmail(email string) (User, error) {
	for _, u := range r.load() {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *JSONRepository) Create(u User) (User, error) {
	users := r.load()
	maxID := 0
	for _, existing := range users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u.ID = maxID + 1
	if u.CreatedAt == "" {
		u.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	users = append(users, u)
	if err := storage.SaveRecords(r.path, "users", users); err != nil {
		return User{}, err
	}
	return u, nil
}
