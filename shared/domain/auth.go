package domain

import "time"

// SessionTTL is the lifetime of every issued session token.
const SessionTTL = 24 * time.Hour

// Session is the outcome of a successful authentication.
type Session struct {
	User  Email
	Token string
}
