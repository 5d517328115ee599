package forum

import "log"

// FallbackRepository tries the primary store and degrades to the secondary on
// any failure; list operations also fall back when the primary yields zero
// rows. The two stores are never reconciled and can diverge; that is the
// storefront's long-standing behavior, kept on purpose.
type FallbackRepository struct {
	primary   Repository
	secondary Repository
}

func NewFallbackRepository(primary, secondary Repository) *FallbackRepository {
	return &FallbackRepository{primary: primary, secondary: secondary}
}

func (r *FallbackRepository) SavePost(e Entry) (Entry, error) {
	saved, err := r.primary.SavePost(e)
	if err != nil {
		log.Printf("forum: post save fell back to secondary store: %v", err)
		return r.secondary.SavePost(e)
	}
	return saved, nil
}

func (r *FallbackRepository) SaveComment(e Entry) (Entry, error) {
	saved, err := r.primary.SaveComment(e)
	if err != nil {
		log.Printf("forum: comment save fell back to secondary store: %v", err)
		return r.secondary.SaveComment(e)
	}
	return saved, nil
}

func (r *FallbackRepository) ListPosts() ([]Entry, error) {
	entries, err := r.primary.ListPosts()
	if err != nil || len(entries) == 0 {
		return r.secondary.ListPosts()
	}
	return entries, nil
}

func (r *FallbackRepository) ListComments(postID int) ([]Entry, error) {
	entries, err := r.primary.ListComments(postID)
	if err != nil || len(entries) == 0 {
		return r.secondary.ListComments(postID)
	}
	return entries, nil
}

func (r *FallbackRepository) ListCommentsForPosts(postIDs []int) ([]Entry, error) {
	entries, err := r.primary.ListCommentsForPosts(postIDs)
	if err != nil || len(entries) == 0 {
		return r.secondary.ListCommentsForPosts(postIDs)
	}
	return entries, nil
}

func (r *FallbackRepository) DeletePost(id int) error {
	if err := r.primary.DeletePost(id); err != nil {
		return r.secondary.DeletePost(id)
	}
	return nil
}

func (r *FallbackRepository) DeleteComment(id int) error {
	if err := r.primary.DeleteComment(id); err != nil {
		return r.secondary.DeleteComment(id)
	}
	return nil
}
