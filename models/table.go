package models

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	// TableReserved is only ever computed for a time window, never stored.
	TableReserved TableStatus = "RESERVED"
	TableOccupied TableStatus = "OCCUPIED"
)

type Table struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Number    int         `gorm:"uniqueIndex;not null" json:"number"`
	Capacity  int         `gorm:"not null" json:"capacity"`
	Status    TableStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	CreatedAt time.Time   `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"not null" json:"updatedAt"`
}

// WithStatus returns a copy of the table carrying the given effective status.
func (t Table) WithStatus(status TableStatus) Table {
	t.Status = status
	return t
}
