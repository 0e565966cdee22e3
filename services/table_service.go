package services

import (
	"context"

	"github.com/yeremiapane/hotel-dining/models"
	"gorm.io/gorm"
)

type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// All returns the stored tables ordered by table number.
func (s *TableService) All(ctx context.Context) ([]models.Table, error) {
	tables := []models.Table{}
	if err := s.db.WithContext(ctx).Order("number ASC").Find(&tables).Error; err != nil {
		return nil, &PersistenceError{Op: "list tables", Err: err}
	}
	return tables, nil
}
