package models

// Employee is an entry in the internal contact directory.
type Employee struct {
	ID         int64  `json:"-"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}
