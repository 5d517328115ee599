package forum

import (
	"errors"
	"strings"
)

var (
	ErrEmptyContent = errors.New("content is required")
	ErrInvalidPost  = errors.New("invalid post id")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewPost publishes a top-level post. Posts on this board are content-only,
// no title.
func (s *Service) NewPost(author, content string) (Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Entry{}, ErrEmptyContent
	}
	return s.repo.SavePost(Entry{Author: author, Content: content})
}

func (s *Service) AddComment(author string, postID int, content string) (Entry, error) {
	content = strings.TrimSpace(content)
	if postID <= 0 {
		return Entry{}, ErrInvalidPost
	}
	if content == "" {
		return Entry{}, ErrEmptyContent
	}
	return s.repo.SaveComment(Entry{PostID: postID, Author: author, Content: content})
}

// Threads returns every post with its comments attached, batching the comment
// lookup across the page of posts.
func (s *Service) Threads() ([]Thread, error) {
	posts, err := s.repo.ListPosts()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	comments, err := s.repo.ListCommentsForPosts(ids)
	if err != nil {
		comments = []Entry{}
	}

	byPost := map[int][]Entry{}
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}

	threads := make([]Thread, 0, len(posts))
	for _, p := range posts {
		cs := byPost[p.ID]
		if cs == nil {
			cs = []Entry{}
		}
		threads = append(threads, Thread{Post: p, Comments: cs})
	}
	return threads, nil
}

func (s *Service) Comments(postID int) ([]Entry, error) {
	return s.repo.ListComments(postID)
}

func (s *Service) DeletePost(id int) error {
	if id <= 0 {
		return ErrInvalidPost
	}
	return s.repo.DeletePost(id)
}

func (s *Service) DeleteComment(id int) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.DeleteComment(id)
}
