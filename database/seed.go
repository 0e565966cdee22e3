package database

import (
	_ "embed"
	"fmt"
	"math/rand"
	"time"

	"github.com/yeremiapane/hotel-dining/models"
	"github.com/yeremiapane/hotel-dining/utils"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var defaultFixture []byte

type Fixture struct {
	DemoGuest       GuestFixture      `yaml:"demo_guest"`
	GeneratedGuests GuestGenerator    `yaml:"generated_guests"`
	Tables          []TableFixture    `yaml:"tables"`
	Menu            []MenuItemFixture `yaml:"menu"`
}

type GuestFixture struct {
	RoomNumber string     `yaml:"room_number"`
	Name       string     `yaml:"name"`
	Allergies  string     `yaml:"allergies"`
	Notes      string     `yaml:"notes"`
	VisitCount int        `yaml:"visit_count"`
	LastVisit  *time.Time `yaml:"last_visit"`
}

// GuestGenerator describes the pseudo-random guests filling every room from
// Floors[0] to Floors[1].
type GuestGenerator struct {
	Floors               [2]int   `yaml:"floors"`
	RoomsPerFloor        int      `yaml:"rooms_per_floor"`
	RandomSeed           int64    `yaml:"random_seed"`
	RequestProbability   float64  `yaml:"request_probability"`
	LastVisitProbability float64  `yaml:"last_visit_probability"`
	MaxVisitCount        int      `yaml:"max_visit_count"`
	FamilyNames          []string `yaml:"family_names"`
	GivenNames           []string `yaml:"given_names"`
	Allergies            []string `yaml:"allergies"`
	Requests             []string `yaml:"requests"`
}

type TableFixture struct {
	Number   int `yaml:"number"`
	Capacity int `yaml:"capacity"`
}

type MenuItemFixture struct {
	Name        string `yaml:"name"`
	Price       int    `yaml:"price"`
	Description string `yaml:"description"`
	Allergens   string `yaml:"allergens"`
	PrepTime    int    `yaml:"prep_time"`
}

// noAllergy is the pool entry meaning the guest has no allergies.
const noAllergy = "None"

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Guest{},
		&models.Table{},
		&models.MenuItem{},
		&models.Reservation{},
	)
}

func LoadFixture(data []byte) (*Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse seed fixture: %w", err)
	}
	for _, t := range fixture.Tables {
		if t.Capacity <= 0 {
			return nil, fmt.Errorf("table %d: capacity must be positive", t.Number)
		}
	}
	return &fixture, nil
}

// Seed loads the embedded fixture.
func Seed(db *gorm.DB) error {
	fixture, err := LoadFixture(defaultFixture)
	if err != nil {
		return err
	}
	return SeedFixture(db, fixture, time.Now())
}

// SeedFixture inserts guests, tables and menu items that do not exist yet.
// Rows are matched by room number, table number and menu item name.
func SeedFixture(db *gorm.DB, fixture *Fixture, now time.Time) error {
	guests := append([]models.Guest{fixture.DemoGuest.model()}, fixture.GeneratedGuests.generate(now, fixture.DemoGuest.RoomNumber)...)
	for i := range guests {
		if err := db.Where("room_number = ?", guests[i].RoomNumber).FirstOrCreate(&guests[i]).Error; err != nil {
			return fmt.Errorf("seed guest %s: %w", guests[i].RoomNumber, err)
		}
	}

	for _, t := range fixture.Tables {
		table := models.Table{Number: t.Number, Capacity: t.Capacity, Status: models.TableAvailable}
		if err := db.Where("number = ?", t.Number).FirstOrCreate(&table).Error; err != nil {
			return fmt.Errorf("seed table %d: %w", t.Number, err)
		}
	}

	for _, m := range fixture.Menu {
		item := models.MenuItem{
			Name:        m.Name,
			Price:       m.Price,
			Description: optional(m.Description),
			Allergens:   optional(m.Allergens),
			PrepTime:    m.PrepTime,
		}
		if err := db.Where("name = ?", m.Name).FirstOrCreate(&item).Error; err != nil {
			return fmt.Errorf("seed menu item %s: %w", m.Name, err)
		}
	}

	utils.InfoLogger.Printf("Seed finished: %d guests, %d tables, %d menu items checked",
		len(guests), len(fixture.Tables), len(fixture.Menu))
	return nil
}

func (g GuestFixture) model() models.Guest {
	return models.Guest{
		RoomNumber: g.RoomNumber,
		Name:       g.Name,
		Allergies:  optional(g.Allergies),
		Notes:      optional(g.Notes),
		VisitCount: g.VisitCount,
		LastVisit:  g.LastVisit,
	}
}

func (g GuestGenerator) generate(now time.Time, skipRoom string) []models.Guest {
	if len(g.FamilyNames) == 0 || len(g.GivenNames) == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(g.RandomSeed))
	pick := func(pool []string) string {
		if len(pool) == 0 {
			return ""
		}
		return pool[rng.Intn(len(pool))]
	}

	var guests []models.Guest
	for floor := g.Floors[0]; floor <= g.Floors[1]; floor++ {
		for room := 1; room <= g.RoomsPerFloor; room++ {
			roomNumber := fmt.Sprintf("%d%02d", floor, room)
			if roomNumber == skipRoom {
				continue
			}

			guest := models.Guest{
				RoomNumber: roomNumber,
				Name:       pick(g.FamilyNames) + " " + pick(g.GivenNames),
			}
			if allergy := pick(g.Allergies); allergy != noAllergy {
				guest.Allergies = optional(allergy)
			}
			if request := pick(g.Requests); rng.Float64() < g.RequestProbability {
				guest.Notes = optional(request)
			}
			guest.VisitCount = rng.Intn(g.MaxVisitCount + 1)
			if rng.Float64() < g.LastVisitProbability {
				// Up to roughly four months back.
				visit := now.Add(-time.Duration(rng.Int63n(int64(120 * 24 * time.Hour))))
				guest.LastVisit = &visit
			}
			guests = append(guests, guest)
		}
	}
	return guests
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
