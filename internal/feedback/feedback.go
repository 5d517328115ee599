package feedback

// Feedback is one support-form submission. The store is append-only; nothing
// in the storefront ever edits or deletes feedback.
type Feedback struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
