package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-dining/services"
	"github.com/yeremiapane/hotel-dining/utils"
	"gorm.io/gorm"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(db *gorm.DB) *GuestController {
	return &GuestController{Guests: services.NewGuestService(db)}
}

// GetGuestByRoom -> GET /guests?room=305
func (gc *GuestController) GetGuestByRoom(c *gin.Context) {
	guest, err := gc.Guests.FindByRoom(c.Request.Context(), c.Query("room"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, guest)
}
