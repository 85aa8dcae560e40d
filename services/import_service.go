package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alayamreception/hotel-house-harmony/models"
	"github.com/alayamreception/hotel-house-harmony/utils"
)

// TaskImportService loads cleaning tasks in bulk from an uploaded CSV.
// Expected columns:
//
//	room_number, booking_id, arrival, departure, cleaning_type, supervisor, status, remarks
//
// The first row is treated as a header. Rows referencing unknown rooms or
// unknown statuses are skipped, not failed; every run is recorded in
// import_logs.
type TaskImportService struct {
	DB *gorm.DB
}

func NewTaskImportService(db *gorm.DB) *TaskImportService {
	return &TaskImportService{DB: db}
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (s *TaskImportService) ImportCSV(r io.Reader, fileName, actor string) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) <= 1 {
		return nil, fmt.Errorf("csv contains no data rows")
	}

	result := &ImportResult{}
	for _, record := range records[1:] {
		if len(record) < 1 || strings.TrimSpace(record[0]) == "" {
			result.Skipped++
			continue
		}

		task, ok := s.rowToTask(record)
		if !ok {
			result.Skipped++
			continue
		}

		if err := s.DB.Create(task).Error; err != nil {
			utils.ErrorLogger.Printf("Error importing task for room %s: %v", record[0], err)
			result.Skipped++
			continue
		}
		result.Imported++
	}

	logEntry := models.ImportLog{
		FileName:        fileName,
		RecordsImported: result.Imported,
		RecordsSkipped:  result.Skipped,
		ImportedBy:      actor,
		ImportTimestamp: time.Now(),
	}
	if err := s.DB.Create(&logEntry).Error; err != nil {
		utils.ErrorLogger.Printf("Error recording import log: %v", err)
	}

	utils.InfoLogger.Printf("Imported %d tasks (%d skipped) from %s",
		result.Imported, result.Skipped, fileName)
	return result, nil
}

func (s *TaskImportService) rowToTask(record []string) (*models.CleaningTask, bool) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var room models.Room
	if err := s.DB.Where("room_number = ?", field(0)).First(&room).Error; err != nil {
		return nil, false
	}

	status := field(6)
	if status == "" {
		status = models.TaskStatusPending
	}
	switch status {
	case models.TaskStatusPending, models.TaskStatusInProgress,
		models.TaskStatusCompleted, models.TaskStatusCancelled:
	default:
		return nil, false
	}

	bookingID := field(1)
	if bookingID == "" {
		bookingID = uuid.NewString()
	}

	task := &models.CleaningTask{
		RoomID:        room.ID,
		Status:        status,
		ScheduledDate: time.Now(),
		BookingID:     bookingID,
		ArrivalTime:   parseImportTime(field(2)),
		DepartureTime: parseImportTime(field(3)),
		CleaningType:  field(4),
		TaskType:      "imported",
		Notes:         field(7),
		CottageType:   room.Cottage,
	}

	if supervisor := field(5); supervisor != "" {
		var staff models.Staff
		if err := s.DB.Where("name = ?", supervisor).First(&staff).Error; err == nil {
			task.SupervisorID = &staff.ID
		}
	}

	return task, true
}

func parseImportTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
