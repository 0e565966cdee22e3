package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-dining/models"
	"github.com/yeremiapane/hotel-dining/services"
	"github.com/yeremiapane/hotel-dining/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	Menu   *services.MenuService
	Guests *services.GuestService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{
		Menu:   services.NewMenuService(db),
		Guests: services.NewGuestService(db),
	}
}

// SearchMenu -> GET /menu?q=pizza&room=305
// With a known room every item carries allergyConflict for that guest.
func (mc *MenuController) SearchMenu(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := mc.Menu.Search(ctx, c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if room := c.Query("room"); room != "" {
		guest, err := mc.Guests.FindByRoom(ctx, room)
		var notFound *services.NotFoundError
		switch {
		case err == nil:
			models.FlagAllergyConflicts(items, guest)
		case errors.As(err, &notFound):
			utils.InfoLogger.Printf("Menu search for unknown room %s, no allergy flags", room)
		default:
			respondServiceError(c, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, items)
}
