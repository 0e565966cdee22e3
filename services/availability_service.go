package services

import (
	"context"
	"time"

	"github.com/yeremiapane/hotel-dining/models"
	"gorm.io/gorm"
)

// SlotDuration is the window a booking blocks its table for.
const SlotDuration = time.Hour

type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// Availability returns every table with its effective status at the given
// instant. A table with a non-cancelled reservation in [at, at+SlotDuration)
// reports RESERVED; every other table keeps its stored status. Without an
// instant the stored statuses are returned unchanged. Nothing is written.
func (s *AvailabilityService) Availability(ctx context.Context, at *time.Time) ([]models.Table, error) {
	db := s.db.WithContext(ctx)

	tables := []models.Table{}
	if err := db.Order("number ASC").Find(&tables).Error; err != nil {
		return nil, &PersistenceError{Op: "list tables", Err: err}
	}
	if at == nil {
		return tables, nil
	}

	start := at.UTC()
	var reservedIDs []uint
	err := db.Model(&models.Reservation{}).
		Where("scheduled_at >= ? AND scheduled_at < ?", start, start.Add(SlotDuration)).
		Where("status <> ?", models.StatusCancelled).
		Where("table_id IS NOT NULL").
		Pluck("table_id", &reservedIDs).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list reservations in slot", Err: err}
	}

	reserved := make(map[uint]bool, len(reservedIDs))
	for _, id := range reservedIDs {
		reserved[id] = true
	}

	effective := make([]models.Table, 0, len(tables))
	for _, table := range tables {
		if reserved[table.ID] {
			table = table.WithStatus(models.TableReserved)
		}
		effective = append(effective, table)
	}
	return effective, nil
}
