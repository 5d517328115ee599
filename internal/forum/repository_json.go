package forum

import (
	"path/filepath"
	"time"

	"github.com/snackshop/snack-shop-backend/internal/storage"
)

// JSONRepository keeps posts and comments in separate data files, the way the
// storefront always has: {"posts":[...]} and {"comments":[...]}.
type JSONRepository struct {
	postsPath    string
	commentsPath string
}

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{
		postsPath:    filepath.Join(dataDir, "posts.json"),
		commentsPath: filepath.Join(dataDir, "comments.json"),
	}
}

func (r *JSONRepository) loadPosts() []Entry {
	posts := make([]Entry, 0)
	if err := storage.LoadRecords(r.postsPath, "posts", &posts); err != nil {
		return []Entry{}
	}
	return posts
}

func (r *JSONRepository) loadComments() []Entry {
	comments := make([]Entry, 0)
	if err := storage.LoadRecords(r.commentsPath, "comments", &comments); err != nil {
		return []Entry{}
	}
	return comments
}

func (r *JSONRepository) SavePost(e Entry) (Entry, error) {
	posts := r.loadPosts()
	e.PostID = 0
	e.ID = nextEntryID(posts)
	e.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	posts = append(posts, e)
	if err := storage.SaveRecords(r.postsPath, "posts", posts); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (r *JSONRepository) SaveComment(e Entry) (Entry, error) {
	comments := r.loadComments()
	e.ID = nextEntryID(comments)
	e.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	comments = append(comments, e)
	if err := storage.SaveRecords(r.commentsPath, "comments", comments); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (r *JSONRepository) ListPosts() ([]Entry, error) {
	return r.loadPosts(), nil
}

func (r *JSONRepository) ListComments(postID int) ([]Entry, error) {
	comments := r.loadComments()
	if postID <= 0 {
		return comments, nil
	}
	out := make([]Entry, 0, len(comments))
	for _, c := range comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *JSONRepository) ListCommentsForPosts(postIDs []int) ([]Entry, error) {
	wanted := make(map[int]struct{}, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = struct{}{}
	}
	out := make([]Entry, 0)
	for _, c := range r.loadComments() {
		if _, ok := wanted[c.PostID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *JSONRepository) DeletePost(id int) error {
	posts := r.loadPosts()
	kept := make([]Entry, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return ErrNotFound
	}
	if err := storage.SaveRecords(r.postsPath, "posts", kept); err != nil {
		return err
	}
	r.deleteCommentsByPost(id)
	return nil
}

func (r *JSONRepository) DeleteComment(id int) error {
	comments := r.loadComments()
	kept := make([]Entry, 0, len(comments))
	for _, c := range comments {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(comments) {
		return ErrNotFound
	}
	return storage.SaveRecords(r.commentsPath, "comments", kept)
}

func (r *JSONRepository) deleteCommentsByPost(postID int) {
	comments := r.loadComments()
	kept := make([]Entry, 0, len(comments))
	for _, c := range comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	if len(kept) != len(comments) {
		_ = storage.SaveRecords(r.commentsPath, "comments", kept)
	}
}

// nextEntryID follows the data files' id scheme: highest existing id plus one,
// 1 when the file is empty.
func nextEntryID(entries []Entry) int {
	maxID := 0
	for _, e := range entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}
