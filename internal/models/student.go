package models

// Student maps an authenticated identity to an internal student record
type Student struct {
	ID        string   `json:"id"`
	Identity  Identity `json:"-"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Email     string   `json:"email,omitempty"`
}
