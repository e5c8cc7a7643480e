package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusOK, map[string]float64{"balance": 70.5})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestRespondWithMessage(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithMessage(w, http.StatusOK, "all notifications marked as read")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "all notifications marked as read", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithError(w, http.StatusConflict, "resource already purchased")

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "resource already purchased", resp.Message)
}
