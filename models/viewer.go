package models

// Viewer identifies who is asking for a projection. Visibility rules:
// the Master sees everything, a team sees requests with a task assigned
// to it, a requester sees only requests carrying their employee id.
type Viewer struct {
	Role       UserRole
	EmployeeID string
	Name       string
}
