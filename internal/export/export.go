// Package export writes the reservation ledger to an Excel report.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hotelier/internal/models"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Reservations"

var headers = []string{"Reservation ID", "Customer", "Room", "Category", "Nights", "Amount (Rs.)", "Status"}

type Writer struct {
	dir    string
	logger *zerolog.Logger
}

func NewWriter(dir string, logger *zerolog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// WriteLedger renders every reservation, cancelled entries included,
// and returns the path of the created file.
func (w *Writer) WriteLedger(reservations []models.Reservation) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	for row, res := range reservations {
		values := []interface{}{
			res.ID,
			res.CustomerName,
			res.RoomID,
			res.Category.Label(),
			res.Nights,
			res.Amount,
			res.Status(),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 15)
	_ = f.SetColWidth(sheetName, "B", "B", 25)
	_ = f.SetColWidth(sheetName, "C", "G", 14)

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("reservations_%s.xlsx", time.Now().Format("2006-01-02_150405"))
	filePath := filepath.Join(w.dir, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("save export file: %w", err)
	}

	w.logger.Info().Str("file_path", filePath).Int("records", len(reservations)).Msg("ledger exported")
	return filePath, nil
}
