package models

// User is an authenticated account resolved from a bearer token.
type User struct {
	ID       string `json:"id" yaml:"id"`
	FullName string `json:"fullName" yaml:"fullName"`
	Email    string `json:"email" yaml:"email"`
}

// Actor is the identity attributed to a mutation: either the
// authenticated user or the fixed system default.
type Actor struct {
	ID   string
	Name string
}

// SystemActor is attributed to mutations made without a live session.
var SystemActor = Actor{ID: "system-owner", Name: "System"}

// ActorFor returns the actor identity for a resolved user.
func ActorFor(user *User) Actor {
	if user == nil {
		return SystemActor
	}
	return Actor{ID: user.ID, Name: user.FullName}
}
