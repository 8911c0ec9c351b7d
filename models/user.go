package models

// User is a registered directory entry. Passwords are stored and compared
// as opaque strings; this is a demo-grade counter system, not an identity
// provider. The privileged admin account is never a User record.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session identifies the acting user for the duration of a token. It is
// transient: nothing in the stores references it.
type Session struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
