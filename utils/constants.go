// File: utils/constants.go
package utils

import "time"

// Gin context keys.
const (
	LoggerKey    = "logger"
	RequestIDKey = "requestID"
	ClaimsKey    = "decoded"
	EmailKey     = "email"
)

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// IntentCachePrefix is the prefix used for Redis payment intent cache keys.
const IntentCachePrefix = "payment-intent:"

// TokenTTL is the fixed lifetime of issued access tokens.
const TokenTTL = time.Hour

// StoreTimeout bounds a single document store call.
const StoreTimeout = 5 * time.Second
