package user

// User is a storefront account. Accounts live in the users.json data file;
// they were never part of the relational schema.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
