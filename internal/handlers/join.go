package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Berley24/chamadaaaa/internal/marker"
	"github.com/Berley24/chamadaaaa/internal/middleware"
	"github.com/Berley24/chamadaaaa/internal/models"
	"github.com/Berley24/chamadaaaa/internal/services"
)

type JoinHandler struct {
	joinService *services.JoinService
	issuer      *marker.Issuer
}

func NewJoinHandler(joinService *services.JoinService, issuer *marker.Issuer) *JoinHandler {
	return &JoinHandler{joinService: joinService, issuer: issuer}
}

type JoinSessionRequest struct {
	Name string   `json:"name" binding:"required"`
	RGM  string   `json:"rgm" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required"`
	Lng  *float64 `json:"lng" binding:"required"`
}

// JoinSession godoc
// @Summary  Submit a student check-in for a session
func (h *JoinHandler) JoinSession(c *gin.Context) {
	sessionID := c.Param("id")

	var req JoinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	attendee, err := h.joinService.Join(services.JoinRequest{
		SessionID:     sessionID,
		Name:          req.Name,
		RGM:           req.RGM,
		Coordinate:    models.Coordinate{Lat: *req.Lat, Lng: *req.Lng},
		OriginAddress: c.ClientIP(),
		HasMarker:     c.GetBool(middleware.ContextHasMarker),
	})
	if err != nil {
		h.reject(c, err)
		return
	}

	token, err := h.issuer.Issue(sessionID)
	if err != nil {
		log.Printf("marker: issue error: %v", err)
	} else {
		c.SetCookie(middleware.MarkerCookieName(sessionID), token,
			int(marker.TTL.Seconds()), "/", "", false, true)
	}

	c.JSON(http.StatusOK, attendee)
}

func (h *JoinHandler) reject(c *gin.Context, err error) {
	var oor *services.OutOfRangeError
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrSessionClosed):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.As(err, &oor):
		c.JSON(http.StatusForbidden, gin.H{
			"error":    oor.Error(),
			"distance": oor.Distance,
			"radius":   oor.Radius,
		})
	case errors.Is(err, services.ErrInvalidSubmission):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrDuplicateDevice),
		errors.Is(err, services.ErrDuplicateRGM),
		errors.Is(err, services.ErrDuplicateAddress):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
