//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"movieflix/internal/mail"
	"movieflix/internal/models"
	"movieflix/test/testutil"

	"github.com/stretchr/testify/require"
)

// Outbox is a mail.Mailer that keeps messages in memory.
type Outbox struct {
	mu       sync.Mutex
	messages []mail.Message
}

var _ mail.Mailer = (*Outbox)(nil)

// Send records msg.
func (o *Outbox) Send(_ context.Context, msg mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, msg)
	return nil
}

// Messages returns the messages sent to addr, oldest first.
func (o *Outbox) Messages(addr string) []mail.Message {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []mail.Message
	for _, m := range o.messages {
		if m.To == addr {
			out = append(out, m)
		}
	}
	return out
}

// Reset forgets all messages.
func (o *Outbox) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = nil
}

// LastOTP extracts the code from the newest reset email sent to addr.
func (o *Outbox) LastOTP(t *testing.T, addr string) int {
	t.Helper()

	msgs := o.Messages(addr)
	require.NotEmpty(t, msgs, "no email sent to %s", addr)

	body := msgs[len(msgs)-1].Body
	idx := strings.LastIndex(body, ":")
	require.GreaterOrEqual(t, idx, 0, "unexpected email body: %s", body)

	otp, err := strconv.Atoi(strings.TrimSpace(body[idx+1:]))
	require.NoError(t, err, "email should end with the code: %s", body)
	return otp
}

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the auth response data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, username, password string) map[string]interface{} {
	t.Helper()

	req := models.RegisterRequest{
		Name:     name,
		Email:    email,
		Username: username,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "register response should be successful")
	return resp.Data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, username, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Username: username,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "login response should be successful")
	return resp.Data
}

// CreateAuthenticatedUser registers a user and returns the user data and access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email, username, password string) (userData map[string]interface{}, accessToken string) {
	t.Helper()

	data := ah.RegisterUser(t, name, email, username, password)

	userData, ok := data["user"].(map[string]interface{})
	require.True(t, ok, "user should be an object")
	accessToken, ok = data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return userData, accessToken
}

// CreateDefaultUser creates a user with default test credentials.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userData map[string]interface{}, accessToken string) {
	t.Helper()
	return ah.CreateAuthenticatedUser(t, "Test User", "test@example.com", "testuser", "password123")
}

// CreateAdmin registers a user and promotes it to ADMIN in the database.
// The returned token was issued before the promotion; permissions are
// checked against the stored role, so it already grants admin access.
func (ah *AuthHelper) CreateAdmin(t *testing.T) string {
	t.Helper()

	userData, token := ah.CreateAuthenticatedUser(t, "Admin", "admin@example.com", "admin", "password123")
	id, ok := userData["id"].(float64)
	require.True(t, ok, "id should be a number")

	ctx := testutil.Context(t)
	require.NoError(t, ah.server.Store.Users.UpdateRole(ctx, int64(id), models.RoleAdmin))

	return token
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := testutil.Context(t)

	err := ah.server.Store.Users.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// MovieHelper provides movie helpers for API tests.
type MovieHelper struct {
	server *TestServer
}

// NewMovieHelper creates a new movie helper.
func NewMovieHelper(server *TestServer) *MovieHelper {
	return &MovieHelper{server: server}
}

// MovieForm builds the multipart fields for a movie request.
func MovieForm(t *testing.T, req models.MovieRequest) map[string]string {
	t.Helper()

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	return map[string]string{"movie": string(raw)}
}

// PosterFile returns a small poster upload.
func PosterFile(name string) testutil.FormFile {
	return testutil.FormFile{Field: "file", FileName: name, Content: []byte("poster:" + name)}
}

// AddMovie creates a movie through the API and returns the response data.
func (mh *MovieHelper) AddMovie(t *testing.T, token string, req models.MovieRequest, posterName string) map[string]interface{} {
	t.Helper()

	w := testutil.MakeMultipartRequest(t, mh.server.Router, http.MethodPost, "/api/v1/movies", token,
		MovieForm(t, req), PosterFile(posterName))
	require.Equal(t, http.StatusCreated, w.Code, "add movie should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "add movie response should be successful")
	return resp.Data
}

// SeedMovie directly inserts a movie into the database (bypasses API and storage).
func (mh *MovieHelper) SeedMovie(t *testing.T, movie *models.Movie) *models.Movie {
	t.Helper()
	ctx := testutil.Context(t)

	err := mh.server.Store.Movies.Create(ctx, movie)
	require.NoError(t, err, "failed to seed movie")

	return movie
}

// MovieID extracts the numeric movieId from response data.
func MovieID(t *testing.T, data map[string]interface{}) int64 {
	t.Helper()

	id, ok := data["movieId"].(float64)
	require.True(t, ok, "movieId should be a number")
	return int64(id)
}
