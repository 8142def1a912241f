package domain

import "time"

type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateVenueInput struct {
	Name     string
	City     string
	Capacity int
}
