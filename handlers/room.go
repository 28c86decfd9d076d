package handlers

import (
	"net/http"

	"aircnc/models"
	"aircnc/services/room"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	RoomService room.RoomService
}

func NewRoomHandler(roomService room.RoomService) *RoomHandler {
	return &RoomHandler{RoomService: roomService}
}

// CreateRoomHandler handles POST /rooms.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var payload models.Room
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.RoomService.CreateRoom(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create room", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListRoomsHandler handles GET /rooms.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.RoomService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, "list rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ListHostRoomsHandler handles GET /rooms/:email. Authentication and the email
// ownership check run as middleware in front of it.
func (h *RoomHandler) ListHostRoomsHandler(c *gin.Context) {
	rooms, err := h.RoomService.ListByHostEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "list host rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomHandler handles GET /room/:id and answers null for unknown rooms.
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	rm, err := h.RoomService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get room", err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// SetRoomStatusHandler handles PATCH /rooms/status/:id with body {"status": bool}.
func (h *RoomHandler) SetRoomStatusHandler(c *gin.Context) {
	var req models.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.RoomService.SetBookedStatus(c.Request.Context(), c.Param("id"), *req.Status)
	if err != nil {
		respondError(c, "set room status", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteRoomHandler handles DELETE /rooms/:id.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	result, err := h.RoomService.DeleteRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "delete room", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
