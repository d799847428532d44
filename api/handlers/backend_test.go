package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/twotier/twotier-services/internal/appconfig"
	"github.com/twotier/twotier-services/models"
)

func TestGetStatus(t *testing.T) {
	cfg := appconfig.DefaultConfig()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	GetStatus(cfg).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response models.StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Message)
}

func TestGetData(t *testing.T) {
	cfg := appconfig.DefaultConfig()
	cfg.Backend.Users = []string{"Alice", "Bob"}
	cfg.Backend.DataMessage = "hello"

	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	w := httptest.NewRecorder()

	GetData(cfg).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response models.BackendResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, response.Users)
	assert.Equal(t, "hello", response.Message)
}

func TestGetData_NilUsersServedAsEmptyList(t *testing.T) {
	cfg := appconfig.DefaultConfig()
	cfg.Backend.Users = nil

	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	w := httptest.NewRecorder()

	GetData(cfg).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users": [], "message": "Hello from the backend!"}`, w.Body.String())
}

func TestNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	NotFound().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response models.Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 0, response.Success)
	assert.Equal(t, "route not found", response.ErrorDetails)
}
