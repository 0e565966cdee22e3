package services

import (
	"context"
	"strings"

	"github.com/yeremiapane/hotel-dining/models"
	"gorm.io/gorm"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// Search lists menu items whose name contains q, ignoring case. An empty q
// lists everything.
func (s *MenuService) Search(ctx context.Context, q string) ([]models.MenuItem, error) {
	query := s.db.WithContext(ctx).Order("id ASC")
	if q = strings.TrimSpace(q); q != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(q))+"%")
	}

	items := []models.MenuItem{}
	if err := query.Find(&items).Error; err != nil {
		return nil, &PersistenceError{Op: "search menu", Err: err}
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
