package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plume/internal/config"
	"plume/internal/database"
	"plume/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires a Server against an isolated in-memory database. No Redis
// client is attached, so every timeline read goes straight to the store.
type testEnv struct {
	t   *testing.T
	app *fiber.App
	srv *Server
	db  *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret-0123456789",
		Env:       "test",
	}
	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)

	return &testEnv{t: t, app: app, srv: srv, db: db}
}

func (e *testEnv) createUser(username string, admin bool) *models.User {
	e.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("StrongTestPass1!"), bcrypt.MinCost)
	require.NoError(e.t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		IsAdmin:  admin,
	}
	require.NoError(e.t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) token(user *models.User) string {
	e.t.Helper()
	token, err := e.srv.generateToken(user.ID, user.Username)
	require.NoError(e.t, err)
	return token
}

// createPost inserts a post with a controlled creation time so ordering
// scenarios are reproducible.
func (e *testEnv) createPost(userID uint, groupID *uint, text string, createdAt time.Time) *models.Post {
	e.t.Helper()
	post := &models.Post{
		Text:      text,
		UserID:    userID,
		GroupID:   groupID,
		CreatedAt: createdAt,
	}
	require.NoError(e.t, e.db.Create(post).Error)
	return post
}

func (e *testEnv) createGroup(title, slug string) *models.Group {
	e.t.Helper()
	group := &models.Group{Title: title, Slug: slug}
	require.NoError(e.t, e.db.Create(group).Error)
	return group
}

// request performs an HTTP request against the app. A non-empty token is sent
// as a bearer credential; a non-nil body is marshaled as JSON.
func (e *testEnv) request(method, path, token string, body any) *http.Response {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// timelineResponse mirrors the JSON shape of a timeline page.
type timelineResponse struct {
	Posts []struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	} `json:"posts"`
	Page struct {
		Number     int  `json:"number"`
		TotalPages int  `json:"total_pages"`
		HasPrev    bool `json:"has_prev"`
		HasNext    bool `json:"has_next"`
	} `json:"page"`
}
