package model

// Scope is the caller identity taken from the verified session.
// The zero Scope is an anonymous caller.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// IsAnonymous reports whether no session was presented.
func (s Scope) IsAnonymous() bool {
	return s.UserID == ""
}
