package api

import (
	"github.com/cockroachdb/errors"
	"net/http"

	"hospedagem-api/internal/domain/booking"
	reqdto "hospedagem-api/internal/handler/dto/request"
	resdto "hospedagem-api/internal/handler/dto/response"
	"hospedagem-api/internal/usecase/commands"
	"hospedagem-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Reserve a room or beds for a client over a stay period
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings with optional room, client and status filters
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param room_id query string false "Room ID filter"
// @Param client_id query string false "Client ID filter"
// @Param status query string false "Status filter" Enums(reserved, active, finalized, canceled)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filter, err := parseBookingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.bookingQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Check in
// @Description Mark the guest's arrival, moving the booking to active
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/checkin [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.applyTransition(c, booking.TransitionCheckIn)
}

// @Summary Check out
// @Description Mark the guest's departure, finalizing the booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/checkout [post]
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.applyTransition(c, booking.TransitionCheckOut)
}

// @Summary Cancel booking
// @Description Cancel a reserved booking, releasing its capacity
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, booking.TransitionCancel)
}

// @Summary Reinstate booking
// @Description Return a canceled booking to reserved if the capacity is still free
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/reinstate [post]
func (h *BookingHandler) Reinstate(c *gin.Context) {
	h.applyTransition(c, booking.TransitionReinstate)
}

// @Summary Delete booking
// @Description Delete a reserved or canceled booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Delete(c.Request.Context(), id); err != nil {
		h.handleBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) applyTransition(c *gin.Context, t booking.Transition) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingCommands.ApplyTransition(c.Request.Context(), id, t)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Client not found",
		})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Booking conflicts with the room's ledger",
			"reason": conflictReason(err),
		})
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Invalid booking transition",
			"reason": transitionReason(err),
		})
	case errors.Is(err, commands.ErrBookingDeleteForbidden):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Only reserved or canceled bookings can be deleted",
		})
	case errors.Is(err, commands.ErrPastCheckIn):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Check-in date is in the past",
		})
	case errors.Is(err, commands.ErrInvalidBookingInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid booking data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// conflictReason surfaces which admissibility rule refused the request.
func conflictReason(err error) string {
	switch {
	case errors.Is(err, booking.ErrRoomUnavailable):
		return "room unavailable for the requested period"
	case errors.Is(err, booking.ErrInsufficientBeds):
		return "not enough free beds for the requested period"
	default:
		return "conflict"
	}
}

func transitionReason(err error) string {
	switch {
	case errors.Is(err, booking.ErrNotReserved):
		return "booking is not in reserved state"
	case errors.Is(err, booking.ErrNotActive):
		return "booking is not in active state"
	case errors.Is(err, booking.ErrNotCanceled):
		return "booking is not canceled"
	case errors.Is(err, booking.ErrAlreadyCheckedIn):
		return "booking is already checked in"
	case errors.Is(err, booking.ErrTerminal):
		return "booking is in a terminal state"
	default:
		return "invalid transition"
	}
}

func parseBookingFilter(c *gin.Context) (queries.BookingFilter, error) {
	var filter queries.BookingFilter

	if roomIDStr := c.Query("room_id"); roomIDStr != "" {
		roomID, err := uuid.Parse(roomIDStr)
		if err != nil {
			return filter, errors.New("invalid room_id filter")
		}
		filter.RoomID = &roomID
	}

	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			return filter, errors.New("invalid client_id filter")
		}
		filter.ClientID = &clientID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := booking.NewStatus(statusStr)
		if err != nil {
			return filter, errors.New("invalid status filter")
		}
		s := status.String()
		filter.Status = &s
	}

	return filter, nil
}
