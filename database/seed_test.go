package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/hotel-dining/models"
	"github.com/yeremiapane/hotel-dining/utils"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger("error")

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestLoadDefaultFixture(t *testing.T) {
	fixture, err := LoadFixture(defaultFixture)
	require.NoError(t, err)

	assert.Equal(t, "305", fixture.DemoGuest.RoomNumber)
	assert.Equal(t, "WHEAT", fixture.DemoGuest.Allergies)
	require.NotNil(t, fixture.DemoGuest.LastVisit)
	assert.Equal(t, 2024, fixture.DemoGuest.LastVisit.Year())
	assert.Len(t, fixture.Tables, 5)
	assert.Len(t, fixture.Menu, 6)
	assert.Equal(t, [2]int{2, 5}, fixture.GeneratedGuests.Floors)
}

func TestLoadFixtureRejectsNonPositiveCapacity(t *testing.T) {
	_, err := LoadFixture([]byte("tables:\n  - {number: 9, capacity: 0}\n"))
	assert.Error(t, err)
}

func TestSeedIsIdempotentAndKeepsExistingRows(t *testing.T) {
	db := setupSeedDB(t)
	fixture, err := LoadFixture(defaultFixture)
	require.NoError(t, err)
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	renamed := models.Guest{RoomNumber: "201", Name: "Manual Entry"}
	require.NoError(t, db.Create(&renamed).Error)

	require.NoError(t, SeedFixture(db, fixture, now))
	require.NoError(t, SeedFixture(db, fixture, now))

	var guests, tables, menu int64
	db.Model(&models.Guest{}).Count(&guests)
	db.Model(&models.Table{}).Count(&tables)
	db.Model(&models.MenuItem{}).Count(&menu)
	assert.Equal(t, int64(40), guests)
	assert.Equal(t, int64(5), tables)
	assert.Equal(t, int64(6), menu)

	var kept models.Guest
	require.NoError(t, db.Where("room_number = ?", "201").First(&kept).Error)
	assert.Equal(t, "Manual Entry", kept.Name)

	var demo models.Guest
	require.NoError(t, db.Where("room_number = ?", "305").First(&demo).Error)
	assert.Equal(t, "Yamada Taro", demo.Name)
	assert.Equal(t, "WHEAT", demo.AllergyTags())

	var carbonara models.MenuItem
	require.NoError(t, db.Where("name = ?", "Carbonara").First(&carbonara).Error)
	require.NotNil(t, carbonara.Allergens)
	assert.Equal(t, "WHEAT,DAIRY,EGG,PORK", *carbonara.Allergens)

	var table models.Table
	require.NoError(t, db.Where("number = ?", 5).First(&table).Error)
	assert.Equal(t, 6, table.Capacity)
	assert.Equal(t, models.TableAvailable, table.Status)
}

func TestGeneratedGuestsAreDeterministic(t *testing.T) {
	fixture, err := LoadFixture(defaultFixture)
	require.NoError(t, err)
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	first := fixture.GeneratedGuests.generate(now, "305")
	second := fixture.GeneratedGuests.generate(now, "305")
	require.Len(t, first, 39)
	assert.Equal(t, first, second)

	for _, g := range first {
		assert.NotEqual(t, "305", g.RoomNumber)
		if g.Allergies != nil {
			assert.NotEqual(t, noAllergy, *g.Allergies)
		}
		assert.LessOrEqual(t, g.VisitCount, 4)
	}
}
