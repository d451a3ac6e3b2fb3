package domain

// User is the authenticated caller, as far as this service knows it.
// Credentials live with the identity provider that issued the token.
type User struct {
	Id       UserId
	Username Username
}
