package services

import (
	"context"
	"strings"

	"github.com/yeremiapane/hotel-dining/models"
	"gorm.io/gorm"
)

type GuestService struct {
	db *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{db: db}
}

func (s *GuestService) FindByRoom(ctx context.Context, room string) (*models.Guest, error) {
	room = strings.TrimSpace(room)
	if room == "" {
		return nil, invalid("Room number is required")
	}

	var guest models.Guest
	if err := s.db.WithContext(ctx).Where("room_number = ?", room).First(&guest).Error; err != nil {
		return nil, storeErr("find guest", "Guest", room, err)
	}
	return &guest, nil
}
