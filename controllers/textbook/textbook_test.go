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
	textbookRoutes "tcb/routers/textbookRoutes"
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
	textbookRoutes.SetupTextbookRoutes(app)
	app.Use(middleware.NotFoundHandler)
	return app
}

func seedUser(t *testing.T, role string) (string, string) {
	t.Helper()
	user := models.User{
		Base:  models.Base{ID: uuid.NewString()},
		Email: uuid.NewString() + "@example.com",
		Role:  role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)
	return user.ID, token
}

func seedTextbook(t *testing.T, title string) models.Textbook {
	t.Helper()
	textbook := models.Textbook{Title: title, Authors: []byte(`[]`), Metadata: []byte(`{}`)}
	require.NoError(t, database.Database.Db.Create(&textbook).Error)
	return textbook
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

type listResponse struct {
	Textbooks  []map[string]interface{} `json:"textbooks"`
	Pagination struct {
		Limit   int   `json:"limit"`
		Offset  int   `json:"offset"`
		Total   int64 `json:"total"`
		HasMore bool  `json:"hasMore"`
	} `json:"pagination"`
}

func TestListTextbooks_Pagination(t *testing.T) {
	app := newTestApp(t)
	for i := 0; i < 25; i++ {
		seedTextbook(t, fmt.Sprintf("Book %02d", i))
	}

	resp := doRequest(t, app, http.MethodGet, "/textbooks?limit=10&offset=0", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page listResponse
	decodeBody(t, resp, &page)
	assert.Len(t, page.Textbooks, 10)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.True(t, page.Pagination.HasMore)

	resp = doRequest(t, app, http.MethodGet, "/textbooks?limit=10&offset=20", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Len(t, page.Textbooks, 5)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.False(t, page.Pagination.HasMore)

	// Exact boundary: offset+limit == total means no more rows
	resp = doRequest(t, app, http.MethodGet, "/textbooks?limit=5&offset=20", "", nil)
	decodeBody(t, resp, &page)
	assert.Len(t, page.Textbooks, 5)
	assert.False(t, page.Pagination.HasMore)
}

func TestListTextbooks_LimitClamped(t *testing.T) {
	app := newTestApp(t)
	for i := 0; i < 3; i++ {
		seedTextbook(t, fmt.Sprintf("Book %d", i))
	}

	resp := doRequest(t, app, http.MethodGet, "/textbooks?limit=500", "", nil)
	var page listResponse
	decodeBody(t, resp, &page)
	assert.Equal(t, 100, page.Pagination.Limit)

	resp = doRequest(t, app, http.MethodGet, "/textbooks?offset=-3", "", nil)
	decodeBody(t, resp, &page)
	assert.Equal(t, 0, page.Pagination.Offset)
}

func TestListTextbooks_WhitelistsColumns(t *testing.T) {
	app := newTestApp(t)
	seedTextbook(t, "Chemistry")

	resp := doRequest(t, app, http.MethodGet, "/textbooks", "", nil)
	var page listResponse
	decodeBody(t, resp, &page)
	require.Len(t, page.Textbooks, 1)
	assert.NotContains(t, page.Textbooks[0], "total_count")
	assert.NotContains(t, page.Textbooks[0], "metadata")
}

func TestGetTextbook(t *testing.T) {
	app := newTestApp(t)
	textbook := seedTextbook(t, "Biology")

	resp := doRequest(t, app, http.MethodGet, "/textbooks/"+textbook.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Textbook
	decodeBody(t, resp, &got)
	assert.Equal(t, "Biology", got.Title)

	resp = doRequest(t, app, http.MethodGet, "/textbooks/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateTextbook_AdminOnly(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin")
	_, userToken := seedUser(t, "user")

	body := map[string]interface{}{"title": "Physics", "authors": []string{"A. Einstein"}}

	// No identity claim
	resp := doRequest(t, app, http.MethodPost, "/textbooks", "", jsonBody(t, body))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Role != admin
	resp = doRequest(t, app, http.MethodPost, "/textbooks", userToken, jsonBody(t, body))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Identity resolves to no user row
	ghostToken, err := middleware.GenerateJWT(uuid.NewString(), "", "ghost@example.com")
	require.NoError(t, err)
	resp = doRequest(t, app, http.MethodPost, "/textbooks", ghostToken, jsonBody(t, body))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin permitted
	resp = doRequest(t, app, http.MethodPost, "/textbooks", adminToken, jsonBody(t, body))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Textbook
	decodeBody(t, resp, &created)
	assert.Equal(t, "Physics", created.Title)
	assert.NotEmpty(t, created.ID)
	assert.JSONEq(t, `["A. Einstein"]`, string(created.Authors))
	assert.JSONEq(t, `{}`, string(created.Metadata))
}

func TestCreateTextbook_WhitespaceTitle(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin")

	for _, title := range []string{"", "   ", "\t\n"} {
		resp := doRequest(t, app, http.MethodPost, "/textbooks", adminToken,
			jsonBody(t, map[string]string{"title": title}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	// Fail-fast: no partial row was created
	var count int64
	database.Database.Db.Model(&models.Textbook{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateTextbook_InvalidJSON(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin")

	resp := doRequest(t, app, http.MethodPost, "/textbooks", adminToken,
		strings.NewReader("{not json"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTextbook_FullReplace(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin")

	license := "CC-BY-4.0"
	publisher := "OpenStax"
	textbook := models.Textbook{
		Title:     "Old Title",
		Authors:   []byte(`["Author One"]`),
		License:   &license,
		Publisher: &publisher,
		Metadata:  []byte(`{"k":"v"}`),
	}
	require.NoError(t, database.Database.Db.Create(&textbook).Error)

	// Body omits license, publisher, authors and metadata: they must be
	// replaced, not preserved.
	resp := doRequest(t, app, http.MethodPut, "/textbooks/"+textbook.ID, adminToken,
		jsonBody(t, map[string]string{"title": "New Title"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Textbook
	require.NoError(t, database.Database.Db.First(&updated, "id = ?", textbook.ID).Error)
	assert.Equal(t, "New Title", updated.Title)
	assert.Nil(t, updated.License)
	assert.Nil(t, updated.Publisher)
	assert.Empty(t, []byte(updated.Authors))
	assert.JSONEq(t, `{}`, string(updated.Metadata))
}

func TestUpdateTextbook_MissingTitle(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin")
	textbook := seedTextbook(t, "Keep Me")

	resp := doRequest(t, app, http.MethodPut, "/textbooks/"+textbook.ID, adminToken,
		jsonBody(t, map[string]string{"summary": "no title here"}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var unchanged models.Textbook
	require.NoError(t, database.Database.Db.First(&unchanged, "id = ?", textbook.ID).Error)
	assert.Equal(t, "Keep Me", unchanged.Title)
}

func TestUpdateTextbook_NotFound(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin")
	seedTextbook(t, "Untouched")

	resp := doRequest(t, app, http.MethodPut, "/textbooks/"+uuid.NewString(), adminToken,
		jsonBody(t, map[string]string{"title": "Ghost"}))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Table unchanged
	var count int64
	database.Database.Db.Model(&models.Textbook{}).Where("title = ?", "Untouched").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteTextbook_Cascades(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin")
	textbook := seedTextbook(t, "Doomed")

	db := database.Database.Db
	section := models.Section{TextbookID: textbook.ID, Title: "Ch 1"}
	require.NoError(t, db.Create(&section).Error)
	child := models.Section{TextbookID: textbook.ID, Title: "Ch 1.1", ParentSectionID: &section.ID}
	require.NoError(t, db.Create(&child).Error)
	prompt := models.SharedPrompt{TextbookID: textbook.ID, PromptText: "Explain X", Tags: []byte(`[]`), Metadata: []byte(`{}`)}
	require.NoError(t, db.Create(&prompt).Error)
	faq := models.FaqCacheEntry{TextbookID: textbook.ID, Question: "Q", Answer: "A"}
	require.NoError(t, db.Create(&faq).Error)
	media := models.MediaItem{TextbookID: textbook.ID, Type: "image", URL: "http://x/y.png"}
	require.NoError(t, db.Create(&media).Error)
	session := models.ChatSession{TextbookID: textbook.ID, Name: "chat"}
	require.NoError(t, db.Create(&session).Error)

	resp := doRequest(t, app, http.MethodDelete, "/textbooks/"+textbook.ID, adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	for _, gone := range []struct {
		model interface{}
		id    string
	}{
		{&models.Section{}, section.ID},
		{&models.Section{}, child.ID},
		{&models.SharedPrompt{}, prompt.ID},
		{&models.FaqCacheEntry{}, faq.ID},
		{&models.MediaItem{}, media.ID},
		{&models.ChatSession{}, session.ID},
	} {
		err := db.First(gone.model, "id = ?", gone.id).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}
}

func TestDeleteTextbook_NotFound(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := seedUser(t, "admin")

	resp := doRequest(t, app, http.MethodDelete, "/textbooks/"+uuid.NewString(), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnmatchedRoute_Is404(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Route not found", body["error"])
}
