package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tcb/config"
	"tcb/database"
	"tcb/middleware"
	"tcb/models"
	chatRoutes "tcb/routers/chatRoutes"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateAll(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	chatRoutes.SetupChatRoutes(app)
	app.Use(middleware.NotFoundHandler)
	return app
}

func seedTextbook(t *testing.T) models.Textbook {
	t.Helper()
	textbook := models.Textbook{Title: "Host Book", Authors: []byte(`[]`), Metadata: []byte(`{}`)}
	require.NoError(t, database.Database.Db.Create(&textbook).Error)
	return textbook
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateSession(t *testing.T) {
	app := newTestApp(t)
	textbook := seedTextbook(t)

	resp := doRequest(t, app, http.MethodPost, "/textbooks/"+textbook.ID+"/chat_sessions",
		map[string]string{"name": "Exam prep", "user_session_id": "anon-7"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session models.ChatSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, "Exam prep", session.Name)
	assert.Equal(t, textbook.ID, session.TextbookID)
	require.NotNil(t, session.UserSessionID)
	assert.Equal(t, "anon-7", *session.UserSessionID)
}

func TestCreateSession_DefaultName(t *testing.T) {
	app := newTestApp(t)
	textbook := seedTextbook(t)

	resp := doRequest(t, app, http.MethodPost, "/textbooks/"+textbook.ID+"/chat_sessions",
		map[string]string{})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session models.ChatSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, "New Chat", session.Name)
}

func TestListSessions_ScopedToTextbook(t *testing.T) {
	app := newTestApp(t)
	textbook := seedTextbook(t)
	other := models.Textbook{Title: "Other", Authors: []byte(`[]`), Metadata: []byte(`{}`)}
	require.NoError(t, database.Database.Db.Create(&other).Error)

	for i := 0; i < 3; i++ {
		session := models.ChatSession{TextbookID: textbook.ID, Name: fmt.Sprintf("chat %d", i)}
		require.NoError(t, database.Database.Db.Create(&session).Error)
	}
	stray := models.ChatSession{TextbookID: other.ID, Name: "elsewhere"}
	require.NoError(t, database.Database.Db.Create(&stray).Error)

	resp := doRequest(t, app, http.MethodGet, "/textbooks/"+textbook.ID+"/chat_sessions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Sessions   []models.ChatSession `json:"sessions"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Sessions, 3)
	assert.Equal(t, int64(3), page.Pagination.Total)
	for _, s := range page.Sessions {
		assert.Equal(t, textbook.ID, s.TextbookID)
	}
}

func TestDeleteSession(t *testing.T) {
	app := newTestApp(t)
	textbook := seedTextbook(t)

	session := models.ChatSession{TextbookID: textbook.ID}
	require.NoError(t, database.Database.Db.Create(&session).Error)

	resp := doRequest(t, app, http.MethodDelete, "/chat_sessions/"+session.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/chat_sessions/"+session.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/chat_sessions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
