// Package auth owns the client-side session: who is signed in, the
// bearer token proving it, and the operations that change either.
package auth

import "github.com/nbhznb/learnify/internal/api"

// Session is the authentication state. User and Token are either both
// set or both empty; every mutation goes through the methods below to
// keep that true.
type Session struct {
	User  api.User
	Token string
}

// Authenticated reports whether a user is signed in.
func (s *Session) Authenticated() bool {
	return s.Token != "" && s.User.ID != ""
}

// SetCredentials installs a signed-in user and token together.
func (s *Session) SetCredentials(user api.User, token string) {
	s.User = user
	s.Token = token
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.User = api.User{}
	s.Token = ""
}

// MergeUser updates profile fields from a fresh server copy while
// keeping the locally known id when the server omits it.
func (s *Session) MergeUser(fresh api.User) {
	if fresh.ID == "" {
		fresh.ID = s.User.ID
	}
	s.User = fresh
}
