package models

// Booking is a persisted reservation. Only the fields used for routing notifications
// and filtering are named; everything else is carried opaquely in the document.
//
//	{ _id, guest: { email, ... }, host: email, transactionId, ... }
type Booking = Document

// Booking document field paths.
const (
	BookingGuestEmailField  = "guest.email"
	BookingHostField        = "host"
	BookingTransactionField = "transactionId"
)

// GuestEmail returns booking.guest.email, or "" when absent.
func GuestEmail(b Booking) string {
	return b.String("guest", "email")
}

// HostEmail returns booking.host; an embedded host object contributes its email.
func HostEmail(b Booking) string {
	if host := b.String("host"); host != "" {
		return host
	}
	return b.String("host", "email")
}

// TransactionID returns booking.transactionId, or "" when absent.
func TransactionID(b Booking) string {
	return b.String("transactionId")
}
