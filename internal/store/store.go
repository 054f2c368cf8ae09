package store

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Berley24/chamadaaaa/internal/models"
)

// Code alphabet excludes visually ambiguous characters (I, O, 0, 1) so the
// id survives being read off a projected QR code or typed by hand.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 8
)

// ErrNotFound is returned by Update when the session id is unknown.
var ErrNotFound = errors.New("session not found")

// Store is the sole owner of all session state. Everything lives in process
// memory and is lost on restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func New() *Store {
	return &Store{sessions: make(map[string]*models.Session)}
}

// Create registers a new active session and returns a snapshot of it.
// Id generation retries on collision, so ids are unique across live sessions.
func (s *Store) Create(name string, anchor models.Coordinate) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	for {
		id = randomCode()
		if _, taken := s.sessions[id]; !taken {
			break
		}
	}

	sess := &models.Session{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
		Anchor:    anchor,
		Active:    true,
		Attendees: []models.Attendee{},
	}
	s.sessions[id] = sess
	return snapshot(sess)
}

// Get returns a copy of the session; callers never hold a live reference.
func (s *Store) Get(id string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return models.Session{}, false
	}
	return snapshot(sess), true
}

// SetActive closes or (no-op) reopens a session. A closed session stays
// closed: reactivation requests are ignored.
func (s *Store) SetActive(id string, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	if active && !sess.Active {
		return true
	}
	sess.Active = active
	return true
}

// SetAnchor recenters the session's reference coordinate.
func (s *Store) SetAnchor(id string, anchor models.Coordinate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Anchor = anchor
	return true
}

// Update runs fn on the live session under the store lock. The join
// pipeline's duplicate checks and append happen inside one Update call, so
// check-then-append is atomic with respect to concurrent joins.
func (s *Store) Update(id string, fn func(*models.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(sess)
}

// AppendAttendee adds an accepted check-in to the end of the session's list.
func (s *Store) AppendAttendee(id string, a models.Attendee) bool {
	return s.Update(id, func(sess *models.Session) error {
		sess.Attendees = append(sess.Attendees, a)
		return nil
	}) == nil
}

// Delete removes the session immediately. There is no soft delete.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func randomCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

func snapshot(sess *models.Session) models.Session {
	out := *sess
	out.Attendees = make([]models.Attendee, len(sess.Attendees))
	copy(out.Attendees, sess.Attendees)
	return out
}
