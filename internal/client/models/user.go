package models

// User is an account profile.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"contato"`
}

// Registration is the payload of a new account request.
type Registration struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"contato"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"contato"`
}

// Session is what a successful login yields. The user object is optional
// in the backend payload; UserID is zero when it is absent.
type Session struct {
	Token  string
	UserID int
	Name   string
}
