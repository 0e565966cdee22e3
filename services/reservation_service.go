package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/hotel-dining/metrics"
	"github.com/yeremiapane/hotel-dining/models"
	"github.com/yeremiapane/hotel-dining/utils"
	"gorm.io/gorm"
)

// ReservationService owns the reservation lifecycle and the table occupancy
// writes it causes.
//
// Reservation and table writes are two separate statements. A failed table
// write leaves the already persisted reservation status in place.
type ReservationService struct {
	db *gorm.DB

	// Now is the clock used for the "from today" bound of List.
	Now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{
		db:  db,
		Now: time.Now,
	}
}

type CreateReservationInput struct {
	GuestID         *uint
	GuestName       string
	TableID         *uint
	Time            time.Time
	PartySize       int
	Adults          int
	Children        int
	OrderDetails    string
	SpecialRequests *string
}

// Create stores a front-desk booking. Bookings are confirmed on creation; the
// table is neither checked for availability nor marked, that happens on seating.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	if in.Time.IsZero() {
		return nil, invalid("time is required")
	}

	name := strings.TrimSpace(in.GuestName)
	if name == "" {
		name = models.WalkInGuestName
	}

	reservation := models.Reservation{
		GuestID:         zeroAsNil(in.GuestID),
		GuestName:       name,
		TableID:         zeroAsNil(in.TableID),
		Time:            in.Time.UTC(),
		PartySize:       in.PartySize,
		Adults:          in.Adults,
		Children:        in.Children,
		OrderDetails:    in.OrderDetails,
		SpecialRequests: in.SpecialRequests,
		Status:          models.StatusConfirmed,
	}

	if err := s.db.WithContext(ctx).Create(&reservation).Error; err != nil {
		return nil, &PersistenceError{Op: "create reservation", Err: err}
	}

	metrics.ReservationsCreated.Inc()
	utils.InfoLogger.Printf("Reservation %d created for %s at %s (table=%v)",
		reservation.ID, reservation.GuestName, reservation.Time.Format(time.RFC3339), tableLabel(reservation.TableID))
	return &reservation, nil
}

// List returns reservations scheduled from the start of today, earliest
// first, with guest and table loaded. Without a filter only active
// reservations are returned; a filter replaces the status set entirely.
func (s *ReservationService) List(ctx context.Context, status string) ([]models.Reservation, error) {
	query := s.db.WithContext(ctx).
		Preload("Guest").
		Preload("Table").
		Where("scheduled_at >= ?", startOfDay(s.Now()).UTC())

	if status != "" {
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("status IN ?", models.ActiveReservationStatuses)
	}

	reservations := []models.Reservation{}
	if err := query.Order("scheduled_at ASC").Order("id ASC").Find(&reservations).Error; err != nil {
		return nil, &PersistenceError{Op: "list reservations", Err: err}
	}
	return reservations, nil
}

// Transition sets the reservation to any recognized status, whatever its
// current one. Seating occupies the table; completion or cancellation frees it.
func (s *ReservationService) Transition(ctx context.Context, id uint, code string) (*models.Reservation, error) {
	status, ok := models.ParseReservationStatus(code)
	if !ok {
		return nil, invalid("invalid status %q", code)
	}

	db := s.db.WithContext(ctx)

	var reservation models.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		return nil, storeErr("load reservation", "Reservation", id, err)
	}

	previous := reservation.Status
	if err := db.Model(&reservation).Update("status", status).Error; err != nil {
		return nil, &PersistenceError{Op: "update reservation status", Err: err}
	}
	reservation.Status = status
	metrics.ReservationTransitions.WithLabelValues(string(status)).Inc()
	utils.InfoLogger.Printf("Reservation %d status changed %s -> %s", reservation.ID, previous, status)

	if tableStatus, ok := status.TableEffect(); ok && reservation.TableID != nil {
		if err := s.setTableStatus(ctx, *reservation.TableID, tableStatus); err != nil {
			return nil, err
		}
	}

	return &reservation, nil
}

// Advance applies the kitchen dashboard's suggested next status.
func (s *ReservationService) Advance(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, storeErr("load reservation", "Reservation", id, err)
	}

	next, ok := reservation.Status.Next()
	if !ok {
		return nil, invalid("no next status after %s", reservation.Status)
	}
	return s.Transition(ctx, id, string(next))
}

// setTableStatus writes the table side effect of a transition. A reference to
// a table that no longer exists is a failed write, not a no-op.
func (s *ReservationService) setTableStatus(ctx context.Context, tableID uint, status models.TableStatus) error {
	db := s.db.WithContext(ctx)
	result := db.Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("status", status)

	err := result.Error
	if err == nil && result.RowsAffected == 0 {
		// MySQL reports 0 rows when the value is unchanged, so check the row exists.
		var count int64
		if err = db.Model(&models.Table{}).Where("id = ?", tableID).Count(&count).Error; err == nil && count == 0 {
			err = fmt.Errorf("table %d: %w", tableID, gorm.ErrRecordNotFound)
		}
	}
	if err != nil {
		metrics.TableStatusWrites.WithLabelValues(string(status), "error").Inc()
		utils.ErrorLogger.Errorf("Table %d status write to %s failed after reservation update: %v", tableID, status, err)
		return &PersistenceError{Op: "update table status", Err: err}
	}

	metrics.TableStatusWrites.WithLabelValues(string(status), "ok").Inc()
	utils.InfoLogger.Printf("Table %d status changed to %s", tableID, status)
	return nil
}

// SerializeOrderDetails accepts the order details field as sent by the
// booking UI: a JSON string is kept as is, any other JSON value is stored in
// its compact serialized form.
func SerializeOrderDetails(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return "", invalid("invalid orderDetails")
		}
		return text, nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", invalid("invalid orderDetails")
	}
	return buf.String(), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func zeroAsNil(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func tableLabel(id *uint) interface{} {
	if id == nil {
		return "none"
	}
	return *id
}
