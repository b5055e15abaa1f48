package model

type StaffMember struct {
	ID        int64  `db:"staff_id" json:"staff_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name,omitempty"`
	Specialty string `db:"specialty" json:"specialty,omitempty"`
}

type Client struct {
	ID          int64  `db:"client_id" json:"client_id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name,omitempty"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
}

type Service struct {
	ID              int64   `db:"service_id" json:"service_id"`
	Name            string  `db:"service_name" json:"service_name"`
	DurationMinutes int     `db:"duration_minutes" json:"duration_minutes"`
	Price           float64 `db:"price" json:"price"`
}
