package export

import (
	"bytes"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Berley24/chamadaaaa/internal/models"
)

var xlsxHeader = []string{"Lesson", "Name", "RGM", "Time", "Origin address"}

// Xlsx serializes the session's attendee list, in check-in order, as a
// spreadsheet.
func Xlsx(sess models.Session) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, title := range xlsxHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, a := range sess.Attendees {
		values := []interface{}{sess.Name, a.Name, a.RGM, a.Time.Format(time.RFC3339), a.OriginAddress}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
