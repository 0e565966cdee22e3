package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/hotel-dining/models"
	"github.com/yeremiapane/hotel-dining/services"
)

func strPtr(s string) *string {
	return &s
}

func TestFindGuestByRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewGuestService(db)
	require.NoError(t, db.Create(&models.Guest{RoomNumber: "305", Name: "Yamada Taro", Allergies: strPtr("WHEAT")}).Error)

	guest, err := svc.FindByRoom(context.Background(), "305")
	require.NoError(t, err)
	assert.Equal(t, "Yamada Taro", guest.Name)

	_, err = svc.FindByRoom(context.Background(), "999")
	var notFound *services.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "999", notFound.Key)
	assert.Equal(t, "Guest not found", notFound.Error())

	_, err = svc.FindByRoom(context.Background(), " ")
	var validationErr *services.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestMenuSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMenuService(db)
	for _, item := range []models.MenuItem{
		{Name: "Margherita", Price: 1500, Allergens: strPtr("WHEAT,DAIRY"), PrepTime: 10},
		{Name: "Carbonara", Price: 1600, Allergens: strPtr("WHEAT,DAIRY,EGG,PORK"), PrepTime: 15},
		{Name: "Caesar Salad", Price: 800, Allergens: strPtr("WHEAT,DAIRY,EGG"), PrepTime: 5},
		{Name: "Still Water", Price: 300},
	} {
		item := item
		require.NoError(t, db.Create(&item).Error)
	}

	all, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	carb, err := svc.Search(context.Background(), "CARB")
	require.NoError(t, err)
	require.Len(t, carb, 1)
	assert.Equal(t, "Carbonara", carb[0].Name)

	ar, err := svc.Search(context.Background(), "ar")
	require.NoError(t, err)
	assert.Len(t, ar, 3)

	wildcard, err := svc.Search(context.Background(), "%")
	require.NoError(t, err)
	assert.Empty(t, wildcard)
}

func TestTableServiceAll(t *testing.T) {
	db := setupTestDB(t)
	createTable(t, db, 2, models.TableOccupied)
	createTable(t, db, 1, models.TableAvailable)

	tables, err := services.NewTableService(db).All(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, 1, tables[0].Number)
	assert.Equal(t, models.TableOccupied, tables[1].Status)
}
