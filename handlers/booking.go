package handlers

import (
	"net/http"

	"aircnc/models"
	"aircnc/services/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: bookingService}
}

// CreateBookingHandler handles POST /bookings. The response is sent once the booking is
// stored; the confirmation emails are still in flight.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var payload models.Booking
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.BookingService.CreateBooking(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListGuestBookingsHandler handles GET /bookings?email=.
func (h *BookingHandler) ListGuestBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListByGuest(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, "list guest bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListHostBookingsHandler handles GET /host-bookings?email=.
func (h *BookingHandler) ListHostBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListByHost(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, "list host bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBookingHandler handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	result, err := h.BookingService.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "delete booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
