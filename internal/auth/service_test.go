package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/nbhznb/learnify/internal/api"
)

type fakeClient struct {
	loginResult    api.LoginResult
	loginErr       error
	registerResult api.LoginResult
	registerErr    error
	profile        api.User
	profileErr     error
	updated        api.User
	updateErr      error
	deleteErr      error

	loginCalls  int
	deleteCalls int
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (api.LoginResult, error) {
	f.loginCalls++
	return f.loginResult, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) (api.LoginResult, error) {
	return f.registerResult, f.registerErr
}

func (f *fakeClient) Profile(ctx context.Context, token string) (api.User, error) {
	return f.profile, f.profileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, token string, update api.ProfileUpdate) (api.User, error) {
	return f.updated, f.updateErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context, token string) error {
	f.deleteCalls++
	return f.deleteErr
}

type memCreds struct {
	stored Credentials
	ok     bool
}

func (m *memCreds) SaveCredentials(c Credentials) error {
	m.stored = c
	m.ok = true
	return nil
}

func (m *memCreds) LoadCredentials() (Credentials, bool, error) {
	return m.stored, m.ok, nil
}

func (m *memCreds) DeleteCredentials() error {
	m.stored = Credentials{}
	m.ok = false
	return nil
}

func newTestService(client *fakeClient) (*Service, *memCreds) {
	creds := &memCreds{}
	return NewService(client, &Session{}, creds), creds
}

func TestLogin_PopulatesSessionAndPersists(t *testing.T) {
	client := &fakeClient{
		loginResult: api.LoginResult{UserID: "7", Token: "tok"},
		profile:     api.User{ID: "7", Username: "ada", Email: "ada@example.com"},
	}
	svc, creds := newTestService(client)

	if err := svc.Login(context.Background(), "ada", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Session().Authenticated() {
		t.Fatal("session not authenticated after login")
	}
	if svc.Session().User.Username != "ada" {
		t.Errorf("user = %+v", svc.Session().User)
	}
	if !creds.ok || creds.stored.Token != "tok" {
		t.Errorf("credentials not persisted: %+v", creds.stored)
	}
}

func TestLogin_RejectsEmptyFieldsWithoutNetwork(t *testing.T) {
	client := &fakeClient{}
	svc, _ := newTestService(client)

	if err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("error = %v, want ErrMissingFields", err)
	}
	if client.loginCalls != 0 {
		t.Error("login reached the network despite a validation failure")
	}
}

func TestLogin_ProfileFailureFallsBackToBareID(t *testing.T) {
	client := &fakeClient{
		loginResult: api.LoginResult{UserID: "7", Token: "tok"},
		profileErr:  errors.New("transient"),
	}
	svc, _ := newTestService(client)

	if err := svc.Login(context.Background(), "ada", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.Session().User.ID; got != "7" {
		t.Errorf("user id = %q, want fallback from login result", got)
	}
}

func TestRegister_ValidatesBeforeNetwork(t *testing.T) {
	svc, _ := newTestService(&fakeClient{})

	err := svc.Register(context.Background(), "ada", "ada@example.com", "pw", "different")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("error = %v, want ErrPasswordMismatch", err)
	}

	err = svc.Register(context.Background(), "ada", "not-an-email", "pw", "pw")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("error = %v, want ErrInvalidEmail", err)
	}
}

func TestRegister_SignsInOnSuccess(t *testing.T) {
	client := &fakeClient{
		registerResult: api.LoginResult{UserID: "9", Token: "fresh"},
		profile:        api.User{ID: "9", Username: "new"},
	}
	svc, _ := newTestService(client)

	if err := svc.Register(context.Background(), "new", "new@example.com", "pw", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Session().Authenticated() {
		t.Fatal("session not authenticated after registration")
	}
}

func TestRevalidate_ExpiredTokenClearsEverything(t *testing.T) {
	client := &fakeClient{profileErr: api.ErrUnauthorized}
	svc, creds := newTestService(client)
	creds.SaveCredentials(Credentials{Token: "stale", User: api.User{ID: "7"}})

	if err := svc.Revalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Session().Authenticated() {
		t.Error("session should be signed out after token expiry")
	}
	if creds.ok {
		t.Error("stored credentials should be deleted after token expiry")
	}
}

func TestRevalidate_MergesFreshProfileKeepingStoredID(t *testing.T) {
	client := &fakeClient{profile: api.User{Username: "renamed", Email: "r@example.com"}}
	svc, creds := newTestService(client)
	creds.SaveCredentials(Credentials{Token: "tok", User: api.User{ID: "7", Username: "old"}})

	if err := svc.Revalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user := svc.Session().User
	if user.ID != "7" {
		t.Errorf("id = %q, want stored id kept when server omits it", user.ID)
	}
	if user.Username != "renamed" {
		t.Errorf("username = %q, want fresh copy", user.Username)
	}
}

func TestRevalidate_AnyFailureClearsStoredSession(t *testing.T) {
	client := &fakeClient{profileErr: errors.New("connection refused")}
	svc, creds := newTestService(client)
	creds.SaveCredentials(Credentials{Token: "tok", User: api.User{ID: "7", Username: "ada"}})

	err := svc.Revalidate(context.Background())
	if err == nil {
		t.Fatal("expected the confirmation failure to be reported")
	}
	if svc.Session().Authenticated() {
		t.Error("an unconfirmed token must not be presented as a valid session")
	}
	if creds.ok {
		t.Error("stored credentials should be cleared when confirmation fails")
	}
}

func TestRevalidate_NoStoredCredentialsIsANoop(t *testing.T) {
	svc, _ := newTestService(&fakeClient{})
	if err := svc.Revalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Session().Authenticated() {
		t.Error("no stored credentials should leave the session signed out")
	}
}

func TestUpdateProfile_ExpiredTokenSignsOut(t *testing.T) {
	client := &fakeClient{updateErr: api.ErrUnauthorized}
	svc, creds := newTestService(client)
	svc.Session().SetCredentials(api.User{ID: "7"}, "tok")
	creds.SaveCredentials(Credentials{Token: "tok", User: api.User{ID: "7"}})

	err := svc.UpdateProfile(context.Background(), api.ProfileUpdate{Username: "x"})
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if svc.Session().Authenticated() || creds.ok {
		t.Error("expired token should tear down session and stored credentials")
	}
}

func TestUpdateProfile_MergesResult(t *testing.T) {
	client := &fakeClient{updated: api.User{Username: "renamed"}}
	svc, _ := newTestService(client)
	svc.Session().SetCredentials(api.User{ID: "7", Username: "old"}, "tok")

	if err := svc.UpdateProfile(context.Background(), api.ProfileUpdate{Username: "renamed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user := svc.Session().User
	if user.ID != "7" || user.Username != "renamed" {
		t.Errorf("user = %+v", user)
	}
}

func TestDeleteAccount_SignsOutEvenWhenTokenExpired(t *testing.T) {
	client := &fakeClient{deleteErr: api.ErrUnauthorized}
	svc, creds := newTestService(client)
	svc.Session().SetCredentials(api.User{ID: "7"}, "tok")
	creds.SaveCredentials(Credentials{Token: "tok", User: api.User{ID: "7"}})

	if err := svc.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Session().Authenticated() || creds.ok {
		t.Error("delete should always end in a signed-out state")
	}
}

func TestLogout_ClearsSessionAndDisk(t *testing.T) {
	svc, creds := newTestService(&fakeClient{})
	svc.Session().SetCredentials(api.User{ID: "7"}, "tok")
	creds.SaveCredentials(Credentials{Token: "tok", User: api.User{ID: "7"}})

	svc.Logout()
	if svc.Session().Authenticated() || creds.ok {
		t.Error("logout left state behind")
	}
}
