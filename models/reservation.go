package models

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusSeated    ReservationStatus = "SEATED"
	StatusCooking   ReservationStatus = "COOKING"
	StatusServed    ReservationStatus = "SERVED"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// WalkInGuestName is stored when a reservation is made without a guest name.
const WalkInGuestName = "Walk-in"

// AllReservationStatuses lists every recognized status in pipeline order.
var AllReservationStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
	StatusCooking,
	StatusServed,
	StatusCompleted,
	StatusCancelled,
}

// ActiveReservationStatuses is the default filter of the reservation list.
var ActiveReservationStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
	StatusCooking,
	StatusServed,
}

// nextStatus is what the kitchen dashboard offers as the single "next" action.
// SEATED is intentionally absent: the dashboard goes from CONFIRMED straight
// to COOKING, seating is recorded by the front desk.
var nextStatus = map[ReservationStatus]ReservationStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusCooking,
	StatusCooking:   StatusServed,
	StatusServed:    StatusCompleted,
}

// ParseReservationStatus returns the status for code, or false if code is not
// one of the recognized values. Matching is exact.
func ParseReservationStatus(code string) (ReservationStatus, bool) {
	for _, s := range AllReservationStatuses {
		if string(s) == code {
			return s, true
		}
	}
	return "", false
}

// Next returns the advisory next status, if any.
func (s ReservationStatus) Next() (ReservationStatus, bool) {
	next, ok := nextStatus[s]
	return next, ok
}

func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// TableEffect returns the table status a transition into s writes, if any.
func (s ReservationStatus) TableEffect() (TableStatus, bool) {
	switch s {
	case StatusSeated:
		return TableOccupied, true
	case StatusCompleted, StatusCancelled:
		return TableAvailable, true
	}
	return "", false
}

type Reservation struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	GuestID         *uint             `gorm:"index" json:"guestId"`
	Guest           *Guest            `gorm:"foreignKey:GuestID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"guest,omitempty"`
	GuestName       string            `gorm:"type:varchar(255);not null" json:"guestName"`
	TableID         *uint             `gorm:"index" json:"tableId"`
	Table           *Table            `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"table,omitempty"`
	Time            time.Time         `gorm:"column:scheduled_at;not null;index" json:"time"`
	PartySize       int               `gorm:"not null" json:"partySize"`
	Adults          int               `gorm:"not null;default:0" json:"adults"`
	Children        int               `gorm:"not null;default:0" json:"children"`
	OrderDetails    string            `gorm:"type:text" json:"orderDetails"`
	SpecialRequests *string           `gorm:"type:text" json:"specialRequests"`
	Status          ReservationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt       time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"not null" json:"updatedAt"`
}
