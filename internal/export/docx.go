package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/Berley24/chamadaaaa/internal/models"
)

// Docx serializes the session's attendee list, in check-in order, as a
// document: a title paragraph followed by one line per attendee.
func Docx(sess models.Session) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText("Attendance: " + sess.Name).Size("32")
	doc.AddParagraph().AddText(sess.CreatedAt.Format("2006-01-02"))
	doc.AddParagraph()

	for i, a := range sess.Attendees {
		line := fmt.Sprintf("%d. %s | %s | %s | %s",
			i+1, a.Name, a.RGM, a.Time.Format(time.RFC3339), a.OriginAddress)
		doc.AddParagraph().AddText(line)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
