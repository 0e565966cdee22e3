package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-dining/services"
	"github.com/yeremiapane/hotel-dining/utils"
	"gorm.io/gorm"
)

type TableController struct {
	Tables       *services.TableService
	Availability *services.AvailabilityService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{
		Tables:       services.NewTableService(db),
		Availability: services.NewAvailabilityService(db),
	}
}

// GetAllTables -> stored table status, no reservation overlay
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.All(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, tables)
}

// GetAvailability -> GET /tables/availability?time=2026-10-15T18:00:00.000Z
func (tc *TableController) GetAvailability(c *gin.Context) {
	var at *time.Time
	if raw := c.Query("time"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid time, expected an ISO 8601 instant", err)
			return
		}
		at = &parsed
	}

	tables, err := tc.Availability.Availability(c.Request.Context(), at)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, tables)
}
