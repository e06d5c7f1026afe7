package auth

// Identity is the authenticated principal carried by a session token.
type Identity struct {
	Email string
	Admin bool
}
