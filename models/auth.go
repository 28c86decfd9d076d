package models

// Claims are the decoded token claims; Email is lifted out for authorization checks.
type Claims struct {
	Email string                 `json:"email"`
	Raw   map[string]interface{} `json:"-"`
}

// TokenResponse is returned by POST /jwt.
type TokenResponse struct {
	Token string `json:"token"`
}

// RoomStatusRequest is the body of PATCH /rooms/status/:id.
type RoomStatusRequest struct {
	Status *bool `json:"status" binding:"required"`
}
