package domain

// Role is a named permission category identified by a stable numeric id.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
