package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Berley24/chamadaaaa/internal/models"
	"github.com/Berley24/chamadaaaa/internal/store"
)

type SessionHandler struct {
	store   *store.Store
	baseURL string
}

func NewSessionHandler(st *store.Store, baseURL string) *SessionHandler {
	return &SessionHandler{store: st, baseURL: baseURL}
}

type CreateSessionRequest struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required"`
	Lng  *float64 `json:"lng" binding:"required"`
}

type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// CreateSession godoc
// @Summary  Open a new attendance session anchored at the instructor's location
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sess := h.store.Create(req.Name, models.Coordinate{Lat: *req.Lat, Lng: *req.Lng})

	c.JSON(http.StatusCreated, gin.H{
		"id":       sess.ID,
		"name":     sess.Name,
		"join_url": h.joinURL(sess.ID),
		"qr_url":   fmt.Sprintf("%s/sessions/%s/qr", h.baseURL, sess.ID),
	})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         sess.ID,
		"name":       sess.Name,
		"active":     sess.Active,
		"created_at": sess.CreatedAt,
		"attendees":  sess.Attendees,
	})
}

func (h *SessionHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if !h.store.SetAnchor(c.Param("id"), models.Coordinate{Lat: *req.Lat, Lng: *req.Lng}) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "location updated"})
}

// CloseSession stops new joins; already-committed attendees are kept.
func (h *SessionHandler) CloseSession(c *gin.Context) {
	if !h.store.SetActive(c.Param("id"), false) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "session closed"})
}

// PurgeSession deletes the session and every attendee record with it.
func (h *SessionHandler) PurgeSession(c *gin.Context) {
	if !h.store.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "session purged"})
}

func (h *SessionHandler) joinURL(sessionID string) string {
	return fmt.Sprintf("%s/sessions/%s/join", h.baseURL, sessionID)
}
