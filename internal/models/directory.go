package models

// User is a schedulable resource (a worker). Tasks reference users by ID
// only; deleting a user leaves any assignment dangling on purpose.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Site is a construction site a task may belong to.
type Site struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Client   string `json:"client,omitempty"`
}
