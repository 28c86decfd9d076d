package routes

import (
	"strings"
	"time"

	"aircnc/handlers"
	"aircnc/middleware"
	"aircnc/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers token issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.IssueTokenHandler)
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/users/:email", hb.UpsertUserHandler)
	r.GET("/user/:email", hb.GetUserByEmailHandler)
}

// RegisterRoomRoutes registers room endpoints. Only the host listing is protected;
// it needs both a valid token and a matching email.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authService auth.AuthService) {
	r.POST("/rooms", hb.CreateRoomHandler)
	r.GET("/rooms", hb.ListRoomsHandler)
	r.GET("/room/:id", hb.GetRoomHandler)
	r.PATCH("/rooms/status/:id", hb.SetRoomStatusHandler)
	r.DELETE("/rooms/:id", hb.DeleteRoomHandler)

	r.GET("/rooms/:email",
		middleware.JWTAuthMiddleware(authService),
		middleware.EmailOwnerMiddleware("email"),
		hb.ListHostRoomsHandler,
	)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.CreateBookingHandler)
	r.GET("/bookings", hb.ListGuestBookingsHandler)
	r.GET("/host-bookings", hb.ListHostBookingsHandler)
	r.DELETE("/bookings/:id", hb.DeleteBookingHandler)
}

// RegisterPaymentRoutes registers payment endpoints; every one requires a token.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authService auth.AuthService) {
	r.POST("/create-payment-intent", middleware.JWTAuthMiddleware(authService), hb.CreatePaymentIntentHandler)
}

// RegisterHealthRoute registers liveness and health endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
}

// CORSMiddleware allows the given comma-separated origins ("*" for any).
func CORSMiddleware(allowOrigins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if allowOrigins == "" || allowOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		for _, o := range strings.Split(allowOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authService auth.AuthService) {
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterRoomRoutes(r, hb, authService)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb, authService)
	RegisterHealthRoute(r, hb)
}
