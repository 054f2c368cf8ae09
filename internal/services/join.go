package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Berley24/chamadaaaa/internal/geo"
	"github.com/Berley24/chamadaaaa/internal/identity"
	"github.com/Berley24/chamadaaaa/internal/models"
	"github.com/Berley24/chamadaaaa/internal/store"
	"github.com/Berley24/chamadaaaa/internal/ws"
)

// JoinService runs the check-in pipeline: geofence, duplicate suppression,
// commit, instructor notification. Rejections have no side effects.
type JoinService struct {
	store *store.Store
	hub   *ws.Hub

	radiusM float64
	// Optional duplicate checks; some deployments disable them.
	rejectMarkedDevice bool
	rejectKnownAddress bool
}

func NewJoinService(st *store.Store, hub *ws.Hub, radiusM float64, rejectMarkedDevice, rejectKnownAddress bool) *JoinService {
	return &JoinService{
		store:              st,
		hub:                hub,
		radiusM:            radiusM,
		rejectMarkedDevice: rejectMarkedDevice,
		rejectKnownAddress: rejectKnownAddress,
	}
}

// JoinRequest is one student submission. HasMarker is whether the caller
// presented a valid device marker for this session.
type JoinRequest struct {
	SessionID     string
	Name          string
	RGM           string
	Coordinate    models.Coordinate
	OriginAddress string
	HasMarker     bool
}

// Join validates the submission and, if accepted, appends the attendee and
// publishes it to the session's subscribers. The duplicate checks and the
// append run under the store lock, so two concurrent submissions with the
// same RGM cannot both commit.
func (s *JoinService) Join(req JoinRequest) (models.Attendee, error) {
	name := strings.TrimSpace(req.Name)
	normalized := identity.Normalize(req.RGM)

	var accepted models.Attendee
	err := s.store.Update(req.SessionID, func(sess *models.Session) error {
		if !sess.Active {
			return ErrSessionClosed
		}

		if name == "" || normalized == "" {
			return ErrInvalidSubmission
		}

		if d := geo.Distance(req.Coordinate, sess.Anchor); d > s.radiusM {
			return &OutOfRangeError{Distance: d, Radius: s.radiusM}
		}

		if s.rejectMarkedDevice && req.HasMarker {
			return ErrDuplicateDevice
		}

		for _, a := range sess.Attendees {
			if a.NormalizedRGM == normalized {
				return ErrDuplicateRGM
			}
		}

		if s.rejectKnownAddress {
			for _, a := range sess.Attendees {
				if a.OriginAddress == req.OriginAddress {
					return ErrDuplicateAddress
				}
			}
		}

		accepted = models.Attendee{
			Name:          name,
			RGM:           req.RGM,
			NormalizedRGM: normalized,
			Time:          time.Now(),
			OriginAddress: req.OriginAddress,
		}
		sess.Attendees = append(sess.Attendees, accepted)

		// Publish while still holding the lock so subscribers see
		// attendees in commit order.
		s.hub.Broadcast(sess.ID, ws.Message{Type: "attendee_accepted", Data: accepted})
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Attendee{}, ErrSessionNotFound
		}
		return models.Attendee{}, err
	}
	return accepted, nil
}
