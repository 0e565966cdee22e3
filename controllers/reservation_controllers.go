package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-dining/services"
	"github.com/yeremiapane/hotel-dining/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{Reservations: services.NewReservationService(db)}
}

type createReservationRequest struct {
	GuestID         *uint           `json:"guestId"`
	GuestName       string          `json:"guestName"`
	TableID         *uint           `json:"tableId"`
	Time            string          `json:"time" binding:"required"`
	PartySize       int             `json:"partySize"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	OrderDetails    json.RawMessage `json:"orderDetails"`
	SpecialRequests *string         `json:"specialRequests"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// GetReservations -> active reservations from today, or only ?status=CODE
func (rc *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := rc.Reservations.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

// CreateReservation -> front desk booking, always CONFIRMED
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	at, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid time, expected an ISO 8601 instant", err)
		return
	}

	orderDetails, err := services.SerializeOrderDetails(req.OrderDetails)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	reservation, err := rc.Reservations.Create(c.Request.Context(), services.CreateReservationInput{
		GuestID:         req.GuestID,
		GuestName:       req.GuestName,
		TableID:         req.TableID,
		Time:            at,
		PartySize:       req.PartySize,
		Adults:          req.Adults,
		Children:        req.Children,
		OrderDetails:    orderDetails,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

// UpdateReservationStatus -> PATCH /reservations/:id/status {"status": "SEATED"}
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	reservation, err := rc.Reservations.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

// AdvanceReservation -> kitchen dashboard "next" button
func (rc *ReservationController) AdvanceReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	reservation, err := rc.Reservations.Advance(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

func reservationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ID", err)
		return 0, false
	}
	return uint(id), true
}
