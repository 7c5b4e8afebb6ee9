package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonhq/models"
	"salonhq/services/booking"
	"salonhq/utils"
)

// BookingHandler serves the appointment endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBookingHandler accepts a public appointment request.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	id, err := h.Svc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "slot no longer available", err.Error())
		case errors.Is(err, booking.ErrInvalidInput), errors.Is(err, booking.ErrNoServices):
			utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
		default:
			h.Logger.Error("failed to create booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": models.BookingStatusPending})
}

// ListBookingsHandler lists bookings, optionally filtered by ?date=YYYY-MM-DD.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		bookings []models.Booking
		err      error
	)
	if date := c.Query("date"); date != "" {
		bookings, err = h.Svc.ListByDate(ctx, date)
	} else {
		bookings, err = h.Svc.List(ctx)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns one booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmBookingHandler moves a pending booking to confirmed.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	if err := h.Svc.Confirm(c.Request.Context(), c.Param("id")); err != nil {
		h.statusError(c, err, "failed to confirm booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingStatusConfirmed})
}

// CancelBookingHandler cancels an active booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.statusError(c, err, "failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingStatusCancelled})
}

// CompleteBookingHandler marks a booking done and returns the checkout
// side effects (client record, bill, WhatsApp link).
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	var input booking.CompletionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid completion payload", err.Error())
		return
	}

	result, err := h.Svc.Complete(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.statusError(c, err, "failed to complete booking")
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteBookingHandler removes a booking record entirely.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *BookingHandler) statusError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, booking.ErrInvalidInput):
		utils.JSONError(c, http.StatusConflict, message, err.Error())
	default:
		h.Logger.Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
