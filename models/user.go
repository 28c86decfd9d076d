package models

// User is keyed by its unique email; all other profile fields are opaque.
type User = Document

const UserEmailField = "email"
