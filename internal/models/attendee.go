package models

import "time"

// Attendee is one accepted student check-in. RGM is the student's
// registration code as submitted; NormalizedRGM is the canonical form used
// for duplicate detection and is not exposed in responses.
type Attendee struct {
	Name          string    `json:"name"`
	RGM           string    `json:"rgm"`
	NormalizedRGM string    `json:"-"`
	Time          time.Time `json:"time"`
	OriginAddress string    `json:"origin_address"`
}
