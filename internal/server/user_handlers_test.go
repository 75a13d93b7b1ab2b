package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradepost/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)
	s := &Server{userRepo: mockRepo}

	app.Post("/users", s.CreateUser)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "jane@example.com"
	})).Return(nil)

	body := `{"username":"jane","email":"jane@example.com","first_name":"Jane","last_name":"Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateUser_InvalidBody(t *testing.T) {
	app := fiber.New()
	s := &Server{userRepo: new(MockUserRepository)}

	app.Post("/users", s.CreateUser)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserExists(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)
	s := &Server{userRepo: mockRepo}

	app.Get("/users/exists/:email", s.UserExists)

	mockRepo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(true, nil)
	mockRepo.On("ExistsByEmail", mock.Anything, "ghost@example.com").Return(false, nil)

	t.Run("registered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/exists/jane@example.com", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]bool
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.True(t, body["exists"])
	})

	t.Run("unregistered answers 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/exists/ghost@example.com", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]bool
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.False(t, body["exists"])
	})
}

func TestUserAds(t *testing.T) {
	app := fiber.New()
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockProductRepository)
	s := &Server{userRepo: mockUsers, productRepo: mockProducts}

	app.Get("/users/:email/ads", s.UserAds)

	mockProducts.On("ListByOwnerEmail", mock.Anything, "seller@example.com").Return([]models.Product{
		{ID: 2, Name: "Bike", Slug: "bike", OwnerEmail: "seller@example.com"},
		{ID: 1, Name: "Lamp", Slug: "lamp", OwnerEmail: "seller@example.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/seller@example.com/ads", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body, 2)
	assert.Equal(t, "bike", body[0]["slug"])
}
