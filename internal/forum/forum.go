package forum

// Entry is one row of the conceptual Forum relation. A post_id of zero marks a
// top-level post; anything greater is a comment on that post.
type Entry struct {
	ID        int    `json:"id"`
	PostID    int    `json:"post_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func (e Entry) IsPost() bool {
	return e.PostID == 0
}

// Thread is a post together with its comments, as rendered by the board.
type Thread struct {
	Post     Entry   `json:"post"`
	Comments []Entry `json:"comments"`
}
