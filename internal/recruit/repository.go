package recruit

import (
	"database/sql"
	"log"
	"path/filepath"
	"time"

	"github.com/snackshop/snack-shop-backend/internal/storage"
)

type Repository interface {
	Save(a Application) (Application, error)
	List() ([]Application, error)
}

// PostgresRepository writes to the Recruit table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(a Application) (Application, error) {
	a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	err := r.db.QueryRow(
		`INSERT INTO "Recruit" (name, email, phone, position_id, motivation, file_path, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		a.Name, a.Email, a.Phone, a.PositionID, a.Motivation, a.FilePath, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresRepository) List() ([]Application, error) {
	rows, err := r.db.Query(`SELECT id, name, email, phone, position_id, motivation, file_path, created_at FROM "Recruit" ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var (
			a        Application
			phone    sql.NullString
			filePath sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &phone, &a.PositionID, &a.Motivation, &filePath, &a.CreatedAt); err != nil {
			return nil, err
		}
		if phone.Valid {
			a.Phone = phone.String
		}
		if filePath.Valid {
			a.FilePath = filePath.String
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// JSONRepository appends to {"applications":[...]} in recruit.json.
type JSONRepository struct {
	path string
}

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{path: filepath.Join(dataDir, "recruit.json")}
}

func (r *JSONRepository) load() []Application {
	apps := make([]Application, 0)
	if err := storage.LoadRecords(r.path, "applications", &apps); err != nil {
		return []Application{}
	}
	return apps
}

func (r *JSONRepository) Save(a Application) (Application, error) {
	apps := r.load()
	maxID := 0
	for _, existing := range apps {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	a.ID = maxID + 1
	a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	apps = append(apps, a)
	if err := storage.SaveRecords(r.path, "applications", apps); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (r *JSONRepository) List() ([]Application, error) {
	return r.load(), nil
}

// FallbackRepository: database first, JSON file on failure or empty list.
type FallbackRepository struct {
	primary   Repository
	secondary Repository
}

func NewFallbackRepository(primary, secondary Repository) *FallbackRepository {
	return &FallbackRepository{primary: primary, secondary: secondary}
}

func (r *FallbackRepository) Save(a Application) (Application, error) {
	saved, err := r.primary.Save(a)
	if err != nil {
		log.Printf("recruit: save fell back to secondary store: %v", err)
		return r.secondary.Save(a)
	}
	return saved, nil
}

func (r *FallbackRepository) List() ([]Application, error) {
	apps, err := r.primary.List()
	if err != nil || len(apps) == 0 {
		return r.secondary.List()
	}
	return apps, nil
}
