package forum

import "errors"

var (
	ErrNotFound = errors.New("forum entry not found")
)

// Repository persists posts and comments. Implementations exist for Postgres,
// for the JSON data files, and as a composite that falls back from one to the
// other.
type Repository interface {
	SavePost(e Entry) (Entry, error)
	SaveComment(e Entry) (Entry, error)
	ListPosts() ([]Entry, error)
	// ListComments returns comments for one post, or every comment when
	// postID is zero.
	ListComments(postID int) ([]Entry, error)
	// ListCommentsForPosts batches comment lookup for a page of posts.
	ListCommentsForPosts(postIDs []int) ([]Entry, error)
	// DeletePost removes a post and cascades to its comments.
	DeletePost(id int) error
	DeleteComment(id int) error
}
