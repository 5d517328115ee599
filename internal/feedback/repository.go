package feedback

import (
	"database/sql"
	"log"
	"path/filepath"
	"time"

	"github.com/snackshop/snack-shop-backend/internal/storage"
)

type Repository interface {
	Save(f Feedback) (Feedback, error)
	List() ([]Feedback, error)
}

// PostgresRepository writes to the Support table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(f Feedback) (Feedback, error) {
	f.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	err := r.db.QueryRow(
		`INSERT INTO "Support" (name, email, subject, message, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		f.Name, f.Email, f.Subject, f.Message, f.CreatedAt,
	).Scan(&f.ID)
	if err != nil {
		return Feedback{}, err
	}
	return f, nil
}

func (r *PostgresRepository) List() ([]Feedback, error) {
	rows, err := r.db.Query(`SELECT id, name, email, subject, message, created_at FROM "Support" ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Feedback, 0)
	for rows.Next() {
		var (
			f       Feedback
			subject sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &subject, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		if subject.Valid {
			f.Subject = subject.String
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// JSONRepository appends to {"feedback":[...]} in feedback.json.
type JSONRepository struct {
	path string
}

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{path: filepath.Join(dataDir, "feedback.json")}
}

func (r *JSONRepository) load() []Feedback {
	items := make([]Feedback, 0)
	if err := storage.LoadRecords(r.path, "feedback", &items); err != nil {
		return []Feedback{}
	}
	return items
}

func (r *JSONRepository) Save(f Feedback) (Feedback, error) {
	items := r.load()
	maxID := 0
	for _, existing := range items {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	f.ID = maxID + 1
	f.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	items = append(items, f)
	if err := storage.SaveRecords(r.path, "feedback", items); err != nil {
		return Feedback{}, err
	}
	return f, nil
}

func (r *JSONRepository) List() ([]Feedback, error) {
	return r.load(), nil
}

// FallbackRepository tries the database first and degrades to the JSON file;
// lists also fall back when the database holds no rows. The stores are never
// reconciled.
type FallbackRepository struct {
	primary   Repository
	secondary Repository
}

func NewFallbackRepository(primary, secondary Repository) *FallbackRepository {
	return &FallbackRepository{primary: primary, secondary: secondary}
}

func (r *FallbackRepository) Save(f Feedback) (Feedback, error) {
	saved, err := r.primary.Save(f)
	if err != nil {
		log.Printf("feedback: save fell back to secondary store: %v", err)
		return r.secondary.Save(f)
	}
	return saved, nil
}

func (r *FallbackRepository) List() ([]Feedback, error) {
	items, err := r.primary.List()
	if err != nil || len(items) == 0 {
		return r.secondary.List()
	}
	return items, nil
}
