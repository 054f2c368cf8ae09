package models

import "time"

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Session is one attendance event, anchored to the instructor's location.
// Attendees are kept in check-in order.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	Anchor    Coordinate `json:"anchor"`
	Active    bool       `json:"active"`
	Attendees []Attendee `json:"attendees"`
}
