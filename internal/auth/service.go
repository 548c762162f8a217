package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbhznb/learnify/internal/api"
)

// Credentials is what survives between runs: the bearer token and the
// profile it belongs to.
type Credentials struct {
	Token string   `json:"access_token"`
	User  api.User `json:"user"`
}

// CredentialsStore persists credentials across runs.
type CredentialsStore interface {
	SaveCredentials(Credentials) error
	LoadCredentials() (Credentials, bool, error)
	DeleteCredentials() error
}

// Client is the slice of the API surface the service needs.
type Client interface {
	Login(ctx context.Context, username, password string) (api.LoginResult, error)
	Register(ctx context.Context, username, email, password string) (api.LoginResult, error)
	Profile(ctx context.Context, token string) (api.User, error)
	UpdateProfile(ctx context.Context, token string, update api.ProfileUpdate) (api.User, error)
	DeleteAccount(ctx context.Context, token string) error
}

// Service coordinates the API client, the in-memory session, and the
// credentials file. All sign-in and sign-out paths run through it so
// the three never disagree.
type Service struct {
	client  Client
	session *Session
	creds   CredentialsStore
}

func NewService(client Client, session *Session, creds CredentialsStore) *Service {
	return &Service{client: client, session: session, creds: creds}
}

// Session exposes the live session for read access.
func (s *Service) Session() *Session {
	return s.session
}

// Login validates the form, signs in against the server, fetches the
// profile for the issued token, and persists the result.
func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := ValidateLogin(username, password); err != nil {
		return err
	}

	result, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.installCredentials(ctx, result)
}

// Register creates the account and signs straight in, the same way the
// server does.
func (s *Service) Register(ctx context.Context, username, email, password, confirm string) error {
	if err := ValidateRegistration(username, email, password, confirm); err != nil {
		return err
	}

	result, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	return s.installCredentials(ctx, result)
}

// installCredentials turns a login result into a full signed-in state:
// profile fetched, session populated, credentials written to disk.
func (s *Service) installCredentials(ctx context.Context, result api.LoginResult) error {
	user, err := s.client.Profile(ctx, result.Token)
	if err != nil {
		// A freshly issued token should work; fall back to the bare id
		// rather than failing the whole sign-in.
		user = api.User{ID: result.UserID}
	}
	if user.ID == "" {
		user.ID = result.UserID
	}

	s.session.SetCredentials(user, result.Token)
	if err := s.creds.SaveCredentials(Credentials{Token: result.Token, User: user}); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// Revalidate restores a previous session from disk and confirms the
// token still works. Any failure to confirm — expiry or otherwise —
// clears the stored credentials and leaves the session signed out, so
// a token that cannot be vouched for is never presented as valid.
func (s *Service) Revalidate(ctx context.Context) error {
	stored, ok, err := s.creds.LoadCredentials()
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	if !ok || stored.Token == "" {
		return nil
	}

	fresh, err := s.client.Profile(ctx, stored.Token)
	if err != nil {
		_ = s.creds.DeleteCredentials()
		s.session.Clear()
		if errors.Is(err, api.ErrUnauthorized) {
			return nil
		}
		return fmt.Errorf("confirm session: %w", err)
	}

	s.session.SetCredentials(stored.User, stored.Token)
	s.session.MergeUser(fresh)
	_ = s.creds.SaveCredentials(Credentials{Token: stored.Token, User: s.session.User})
	return nil
}

// UpdateProfile pushes edited account fields. On token expiry the
// session is torn down so the UI can return to sign-in.
func (s *Service) UpdateProfile(ctx context.Context, update api.ProfileUpdate) error {
	if !s.session.Authenticated() {
		return api.ErrUnauthorized
	}

	fresh, err := s.client.UpdateProfile(ctx, s.session.Token, update)
	if errors.Is(err, api.ErrUnauthorized) {
		s.signOut()
		return err
	}
	if err != nil {
		return err
	}

	s.session.MergeUser(fresh)
	_ = s.creds.SaveCredentials(Credentials{Token: s.session.Token, User: s.session.User})
	return nil
}

// DeleteAccount removes the account server-side and signs out locally.
func (s *Service) DeleteAccount(ctx context.Context) error {
	if !s.session.Authenticated() {
		return api.ErrUnauthorized
	}

	if err := s.client.DeleteAccount(ctx, s.session.Token); err != nil && !errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	s.signOut()
	return nil
}

// Logout discards the session and stored credentials. Purely local;
// the server keeps no session state beyond the token.
func (s *Service) Logout() {
	s.signOut()
}

func (s *Service) signOut() {
	s.session.Clear()
	_ = s.creds.DeleteCredentials()
}
