package models

// Room is a host's listing: { _id, host: { email, ... }, booked, ... }.
type Room = Document

// Room document field paths.
const (
	RoomHostEmailField = "host.email"
	RoomBookedField    = "booked"
)
