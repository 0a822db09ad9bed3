package api

import (
	"github.com/cockroachdb/errors"
	"net/http"
	"time"

	reqdto "hospedagem-api/internal/handler/dto/request"
	resdto "hospedagem-api/internal/handler/dto/response"
	"hospedagem-api/internal/pkg/clock"
	"hospedagem-api/internal/usecase/commands"
	"hospedagem-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
	clock        clock.Clock
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries, clock clock.Clock) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
		clock:        clock,
	}
}

// @Summary List rooms
// @Description List the room catalog, optionally filtered by group and availability
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param group query string false "Room group filter"
// @Param available query string false "Filter to rooms with a free bed: 'true' for today or a YYYY-MM-DD date"
// @Success 200 {array} resdto.RoomListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var group *string
	if g := c.Query("group"); g != "" {
		group = &g
	}

	var availableOn *time.Time
	switch available := c.Query("available"); available {
	case "":
	case "true":
		day := h.clock.Today()
		availableOn = &day
	default:
		day, err := time.Parse(dateLayout, available)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid available filter, expected 'true' or YYYY-MM-DD",
			})
			return
		}
		availableOn = &day
	}

	items, err := h.roomQueries.List(c.Request.Context(), group, availableOn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RoomListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromRoomListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Description Create a new room (gerente or admin)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.roomCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update room
// @Description Update a room (gerente or admin)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomCommands.Update(c.Request.Context(), id, req); err != nil {
		h.handleRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete room
// @Description Delete a room without upcoming bookings (gerente or admin)
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	if err := h.roomCommands.Delete(c.Request.Context(), id); err != nil {
		h.handleRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) handleRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, commands.ErrDuplicateRoomNumber):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room number already in use",
		})
	case errors.Is(err, commands.ErrRoomHasBookings):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room has upcoming bookings",
		})
	case errors.Is(err, commands.ErrRoomValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid room data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
