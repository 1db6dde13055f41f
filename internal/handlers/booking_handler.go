package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handyhub/marketplace-api/internal/httperr"
	"github.com/handyhub/marketplace-api/internal/httpresp"
	"github.com/handyhub/marketplace-api/internal/middleware"
	"github.com/handyhub/marketplace-api/internal/models"
	ucBooking "github.com/handyhub/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db           *gorm.DB
	createUC     *ucBooking.CreateBooking
	updateStatUC *ucBooking.UpdateBookingStatus
	listUC       *ucBooking.ListBookingsForUser
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	updateStatUC *ucBooking.UpdateBookingStatus,
	listUC *ucBooking.ListBookingsForUser,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		createUC:     createUC,
		updateStatUC: updateStatUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID       uint    `json:"service_id" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Address         string  `json:"address" binding:"required"`
	ClientName      string  `json:"client_name"`
	ClientEmail     string  `json:"client_email"`
	ClientPhone     string  `json:"client_phone"`
	LocationDetails string  `json:"location_details"`
	TotalAmount     float64 `json:"total_amount" binding:"gte=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be RFC3339.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID:      customerID,
		ServiceID:       req.ServiceID,
		Date:            date,
		Address:         req.Address,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		LocationDetails: req.LocationDetails,
		TotalAmount:     req.TotalAmount,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookings, err := h.listUC.Execute(c.Request.Context(), userID, role)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	var b models.Booking
	if err := h.db.
		Preload("Customer").
		Preload("Service").
		Preload("Service.Provider").
		Preload("Service.Category").
		First(&b, uint(id)).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "No such booking.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Could not load the booking.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.updateStatUC.Execute(c.Request.Context(), actorID, uint(id), req.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "service_not_found", "booking_not_found":
		httperr.NotFound(c, code, "Referenced resource does not exist.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Unknown booking status value.")
	case "invalid_status_transition":
		httperr.BadRequest(c, code, "Booking cannot move to the requested status.")
	default:
		httperr.Internal(c, "internal_error", "Could not process the booking.")
	}
}
