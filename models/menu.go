package models

import "time"

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       int       `gorm:"not null" json:"price"`
	Description *string   `gorm:"type:text" json:"description"`
	Allergens   *string   `gorm:"type:varchar(255)" json:"allergens"`
	PrepTime    int       `gorm:"not null;default:0" json:"prepTime"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`

	// AllergyConflict is filled in per request when a guest is known.
	AllergyConflict *bool `gorm:"-" json:"allergyConflict,omitempty"`
}

// ConflictsWith reports whether the item contains an allergen the guest declared.
func (m *MenuItem) ConflictsWith(guest *Guest) bool {
	if m.Allergens == nil {
		return false
	}
	return HasAllergyConflict(guest.AllergyTags(), *m.Allergens)
}

// FlagAllergyConflicts sets AllergyConflict on every item for the given guest.
func FlagAllergyConflicts(items []MenuItem, guest *Guest) {
	for i := range items {
		conflict := items[i].ConflictsWith(guest)
		items[i].AllergyConflict = &conflict
	}
}
