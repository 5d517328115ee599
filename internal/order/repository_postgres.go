package order

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO "Orders" (order_number, customer_email, items_count, total_amount, items_json, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	listOrdersQuery = `
		SELECT id, order_number, customer_email, items_count, total_amount, items_json, status, created_at
		FROM "Orders"
		ORDER BY created_at DESC
	`
	deleteOrderQuery = `DELETE FROM "Orders" WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	if ord.CreatedAt == "" {
		ord.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	err = r.db.QueryRow(
		insertOrderQuery,
		ord.OrderNumber,
		ord.CustomerEmail,
		ord.ItemsCount,
		ord.Total.StringFixed(2),
		string(itemsJSON),
		ord.Status,
		ord.CreatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) List() ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var (
			ord       Order
			total     string
			itemsJSON sql.NullString
			createdAt sql.NullString
		)
		if err := rows.Scan(&ord.ID, &ord.OrderNumber, &ord.CustomerEmail, &ord.ItemsCount, &total, &itemsJSON, &ord.Status, &createdAt); err != nil {
			return nil, err
		}
		if ord.Total, err = decimal.NewFromString(total); err != nil {
			ord.Total = decimal.Zero
		}
		if itemsJSON.Valid && itemsJSON.String != "" {
			_ = json.Unmarshal([]byte(itemsJSON.String), &ord.Items)
		}
		if createdAt.Valid {
			ord.CreatedAt = createdAt.String
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteOrderQuery, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
