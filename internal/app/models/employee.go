package models

import "time"

// Employee represents a single employee record.
type Employee struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	HireDate  time.Time `json:"hireDate"`
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// HireDateString returns the hire date in YYYY-MM-DD form, as stored in the
// DATE column and rendered in forms.
func (e *Employee) HireDateString() string {
	return e.HireDate.Format("2006-01-02")
}
