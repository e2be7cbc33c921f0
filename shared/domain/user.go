package domain

type (
	Email    = string
	Password = string
	UserId   = int64
)

type User struct {
	Id       UserId
	Email    Email
	PassHash string
}

// Credentials live for a single request and are never persisted.
type Credentials struct {
	Email    Email
	Password Password
}
