package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, []string{"Home", "Icons"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `["Home","Icons"]`, w.Body.String())

	w = httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, map[string][]string{"Home": {"u"}})
	assert.JSONEq(t, `{"Home":["u"]}`, w.Body.String())
}
