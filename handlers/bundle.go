// File: aircnc/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	IssueTokenHandler gin.HandlerFunc

	// User endpoints
	UpsertUserHandler     gin.HandlerFunc
	GetUserByEmailHandler gin.HandlerFunc

	// Room endpoints
	CreateRoomHandler    gin.HandlerFunc
	ListRoomsHandler     gin.HandlerFunc
	ListHostRoomsHandler gin.HandlerFunc
	GetRoomHandler       gin.HandlerFunc
	SetRoomStatusHandler gin.HandlerFunc
	DeleteRoomHandler    gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler     gin.HandlerFunc
	ListGuestBookingsHandler gin.HandlerFunc
	ListHostBookingsHandler  gin.HandlerFunc
	DeleteBookingHandler     gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntentHandler gin.HandlerFunc

	// Liveness endpoints
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc
}
