package forum

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// PostgresRepository stores the board in the Forum table. Reads additionally
// consult the legacy Comments/Posts tables that older deployments used, so
// consumers see rows no matter which shape a deployment carries.
type PostgresRepository struct {
	db *sql.DB
}

const (
	insertForumQuery = `
		INSERT INTO "Forum" (post_id, author, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	listPostsQuery = `
		SELECT id, post_id, author, content, created_at
		FROM "Forum"
		WHERE post_id = 0
		ORDER BY created_at DESC
	`
)

// commentLookup is one strategy for finding comments; strategies are tried in
// order until one yields rows.
type commentLookup struct {
	byPost  string
	all     string
	byPosts string
}

var commentLookups = []commentLookup{
	{
		byPost:  `SELECT id, post_id, author, content, created_at FROM "Forum" WHERE post_id = $1 ORDER BY created_at ASC`,
		all:     `SELECT id, post_id, author, content, created_at FROM "Forum" WHERE post_id > 0 ORDER BY created_at ASC`,
		byPosts: `SELECT id, post_id, author, content, created_at FROM "Forum" WHERE post_id = ANY($1::int[]) ORDER BY created_at ASC`,
	},
	{
		byPost:  `SELECT id, post_id, author, content, created_at FROM "Comments" WHERE post_id = $1 ORDER BY created_at ASC`,
		all:     `SELECT id, post_id, author, content, created_at FROM "Comments" ORDER BY created_at ASC`,
		byPosts: `SELECT id, post_id, author, content, created_at FROM "Comments" WHERE post_id = ANY($1::int[]) ORDER BY created_at ASC`,
	},
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) save(e Entry) (Entry, error) {
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := r.db.QueryRow(insertForumQuery, e.PostID, e.Author, e.Content, e.CreatedAt).Scan(&e.ID); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (r *PostgresRepository) SavePost(e Entry) (Entry, error) {
	e.PostID = 0
	return r.save(e)
}

func (r *PostgresRepository) SaveComment(e Entry) (Entry, error) {
	return r.save(e)
}

func (r *PostgresRepository) ListPosts() ([]Entry, error) {
	rows, err := r.db.Query(listPostsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *PostgresRepository) ListComments(postID int) ([]Entry, error) {
	for _, lookup := range commentLookups {
		var (
			rows *sql.Rows
			err  error
		)
		if postID > 0 {
			rows, err = r.db.Query(lookup.byPost, postID)
		} else {
			rows, err = r.db.Query(lookup.all)
		}
		if err != nil {
			continue
		}
		entries, err := scanEntries(rows)
		rows.Close()
		if err != nil || len(entries) == 0 {
			continue
		}
		return entries, nil
	}
	return []Entry{}, nil
}

func (r *PostgresRepository) ListCommentsForPosts(postIDs []int) ([]Entry, error) {
	if len(postIDs) == 0 {
		return []Entry{}, nil
	}
	for _, lookup := range commentLookups {
		rows, err := r.db.Query(lookup.byPosts, pq.Array(postIDs))
		if err != nil {
			continue
		}
		entries, err := scanEntries(rows)
		rows.Close()
		if err != nil || len(entries) == 0 {
			continue
		}
		return entries, nil
	}
	return []Entry{}, nil
}

// DeletePost removes the post row from Forum (or the legacy Posts table) and
// cascades to its comments across both shapes. ErrNotFound when nothing was
// deleted anywhere lets a fallback store take over.
func (r *PostgresRepository) DeletePost(id int) error {
	deleted := false

	if res, err := r.db.Exec(`DELETE FROM "Forum" WHERE id = $1 AND post_id = 0`, id); err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			deleted = true
		}
	}
	if !deleted {
		if res, err := r.db.Exec(`DELETE FROM "Posts" WHERE id = $1`, id); err == nil {
			if n, _ := res.RowsAffected(); n > 0 {
				deleted = true
			}
		}
	}

	if r.deleteCommentsByPost(id) {
		deleted = true
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteComment(id int) error {
	if res, err := r.db.Exec(`DELETE FROM "Forum" WHERE id = $1`, id); err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
	}
	if res, err := r.db.Exec(`DELETE FROM "Comments" WHERE id = $1`, id); err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
	}
	return ErrNotFound
}

func (r *PostgresRepository) deleteCommentsByPost(postID int) bool {
	deleted := false
	if res, err := r.db.Exec(`DELETE FROM "Forum" WHERE post_id = $1`, postID); err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			deleted = true
		}
	}
	if res, err := r.db.Exec(`DELETE FROM "Comments" WHERE post_id = $1`, postID); err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			deleted = true
		}
	}
	return deleted
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	out := make([]Entry, 0)
	for rows.Next() {
		var (
			e         Entry
			createdAt sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.PostID, &e.Author, &e.Content, &createdAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			e.CreatedAt = createdAt.String
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
