package models

import "time"

// Guest is a hotel guest record keyed by room number.
type Guest struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	RoomNumber string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"roomNumber"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	Allergies  *string    `gorm:"type:varchar(255)" json:"allergies"`
	Notes      *string    `gorm:"type:text" json:"notes"`
	VisitCount int        `gorm:"not null;default:0" json:"visitCount"`
	LastVisit  *time.Time `json:"lastVisit"`
	CreatedAt  time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updatedAt"`
}

// AllergyTags returns the raw allergy list, or "" when none is recorded.
func (g *Guest) AllergyTags() string {
	if g == nil || g.Allergies == nil {
		return ""
	}
	return *g.Allergies
}
