package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Berley24/chamadaaaa/internal/export"
	"github.com/Berley24/chamadaaaa/internal/models"
	"github.com/Berley24/chamadaaaa/internal/qr"
	"github.com/Berley24/chamadaaaa/internal/store"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type ExportHandler struct {
	store         *store.Store
	baseURL       string
	purgeOnExport bool
}

func NewExportHandler(st *store.Store, baseURL string, purgeOnExport bool) *ExportHandler {
	return &ExportHandler{store: st, baseURL: baseURL, purgeOnExport: purgeOnExport}
}

// QRCode streams a scannable PNG for the session's join URL.
func (h *ExportHandler) QRCode(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := h.store.Get(sessionID); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}

	png, err := qr.PNG(fmt.Sprintf("%s/sessions/%s/join", h.baseURL, sessionID))
	if err != nil {
		log.Printf("qr: render error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render qr code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ExportXlsx streams the attendee list as a spreadsheet attachment.
func (h *ExportHandler) ExportXlsx(c *gin.Context) {
	h.export(c, "xlsx", xlsxContentType, export.Xlsx)
}

// ExportDocx streams the attendee list as a document attachment.
func (h *ExportHandler) ExportDocx(c *gin.Context) {
	h.export(c, "docx", docxContentType, export.Docx)
}

func (h *ExportHandler) export(c *gin.Context, ext, contentType string, encode func(models.Session) ([]byte, error)) {
	sess, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}

	data, err := encode(sess)
	if err != nil {
		log.Printf("export: encode error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to encode export"})
		return
	}

	filename := export.Filename(sess.Name, ext, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)

	if h.purgeOnExport {
		h.store.Delete(sess.ID)
		log.Printf("export: session %s purged after export", sess.ID)
	}
}
