package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAllergyConflict(t *testing.T) {
	cases := []struct {
		name      string
		guest     string
		item      string
		conflicts bool
	}{
		{"no overlap", "WHEAT,DAIRY", "EGG", false},
		{"single overlap", "WHEAT,DAIRY", "WHEAT", true},
		{"no guest allergies", "", "WHEAT,DAIRY", false},
		{"no item allergens", "WHEAT", "", false},
		{"mixed case and spaces", " wheat , Dairy", "dairy", true},
		{"shrimp vs caesar salad", "SHRIMP", "WHEAT,DAIRY,EGG", false},
		{"shrimp vs carbonara", "SHRIMP", "WHEAT,DAIRY,EGG,PORK", false},
		{"token not substring", "BUCKWHEAT", "WHEAT", false},
		{"empty tokens ignored", "WHEAT,", "EGG,", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.conflicts, HasAllergyConflict(tc.guest, tc.item))
		})
	}
}

func TestMenuItemConflictsWith(t *testing.T) {
	wheat := "WHEAT"
	allergens := "WHEAT,DAIRY"
	item := MenuItem{Name: "Margherita", Allergens: &allergens}

	assert.True(t, item.ConflictsWith(&Guest{Allergies: &wheat}))
	assert.False(t, item.ConflictsWith(&Guest{}))
	assert.False(t, item.ConflictsWith(nil))
	assert.False(t, (&MenuItem{Name: "Water"}).ConflictsWith(&Guest{Allergies: &wheat}))
}

func TestFlagAllergyConflicts(t *testing.T) {
	caesar, carbonara, shrimp, pork := "WHEAT,DAIRY,EGG", "WHEAT,DAIRY,EGG,PORK", "SHRIMP", "pork"
	items := []MenuItem{
		{Name: "Caesar Salad", Allergens: &caesar},
		{Name: "Carbonara", Allergens: &carbonara},
		{Name: "Still Water"},
	}

	FlagAllergyConflicts(items, &Guest{Allergies: &shrimp})
	for _, item := range items {
		if assert.NotNil(t, item.AllergyConflict, item.Name) {
			assert.False(t, *item.AllergyConflict, item.Name)
		}
	}

	FlagAllergyConflicts(items, &Guest{Allergies: &pork})
	assert.False(t, *items[0].AllergyConflict)
	assert.True(t, *items[1].AllergyConflict)
	assert.False(t, *items[2].AllergyConflict)
}
