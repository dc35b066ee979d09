package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gymslot/internal/models"
	"gymslot/internal/schedule"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

// XLSXWriter сохраняет снимок списка броней в Excel файл
type XLSXWriter struct {
	dir       string
	batchSize int
	logger    *zerolog.Logger
	clock     func() time.Time
}

func NewXLSXWriter(dir string, logger *zerolog.Logger) *XLSXWriter {
	return &XLSXWriter{
		dir:       dir,
		batchSize: models.DefaultExportBatchSize,
		logger:    logger,
		clock:     time.Now,
	}
}

// Write создает Excel файл со снимком броней и возвращает путь к нему
func (w *XLSXWriter) Write(bookings []models.Booking) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	now := w.clock()
	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Snapshot: %s", now.Format("02.01.2006 15:04")))

	w.writeHeaders(f)

	if len(bookings) > w.batchSize {
		bookings = bookings[:w.batchSize]
	}
	for i, b := range bookings {
		w.writeRow(f, 3+i, b, now)
	}

	_ = f.SetColWidth(sheetName, "A", "A", 25)
	_ = f.SetColWidth(sheetName, "B", "G", 18)
	_ = f.MergeCell(sheetName, "A1", "G1")

	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", style)

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("bookings_%s.xlsx", now.Format("2006-01-02_150405"))
	filePath := filepath.Join(w.dir, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}

	w.logger.Info().Str("file_path", filePath).Int("bookings", len(bookings)).Msg("Excel file created")
	return filePath, nil
}

func (w *XLSXWriter) writeHeaders(f *excelize.File) {
	headers := []string{"Booking", "Gym", "Date", "Start", "End", "Amount", "Status"}

	style, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, style)
	}
}

func (w *XLSXWriter) writeRow(f *excelize.File, row int, b models.Booking, now time.Time) {
	status := "unknown"
	if cls, ok := schedule.Classify(b, now); ok {
		status = string(cls.Status)
	}

	gym := ""
	if b.Gym != nil {
		gym = b.Gym.Name
	}

	date := ""
	if b.Date.Valid() {
		date = b.Date.Format(models.DateLayout)
	}

	values := []interface{}{b.ID, gym, date, b.StartTime, b.EndTime, b.AmountPaid, status}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheetName, cell, v)
	}
}
