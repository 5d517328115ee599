package recruit

// Application is one job application from the recruiting form.
type Application struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	PositionID int    `json:"position_id"`
	Motivation string `json:"motivation"`
	FilePath   string `json:"file_path,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// allowedResumeExtensions are the resume file types the form accepts.
var allowedResumeExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".gif", ".webp"}
