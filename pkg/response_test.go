package pkg

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponses(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		wantCode int
		wantType string
		wantBody string
	}{
		{
			name:     "text ok",
			write:    func(w http.ResponseWriter) { WriteTextResponseOK(w, "I'm OK, thanks ;)") },
			wantCode: http.StatusOK,
			wantType: ContentType.Text,
			wantBody: "I'm OK, thanks ;)",
		},
		{
			name:     "json ok",
			write:    func(w http.ResponseWriter) { WriteJSONResponseOK(w, `{"ok":true}`) },
			wantCode: http.StatusOK,
			wantType: ContentType.JSON,
			wantBody: `{"ok":true}`,
		},
		{
			name: "custom status",
			write: func(w http.ResponseWriter) {
				WriteResponse(w, ContentType.Text, "slow down", http.StatusTooManyRequests)
			},
			wantCode: http.StatusTooManyRequests,
			wantType: ContentType.Text,
			wantBody: "slow down",
		},
		{
			name:     "bytes without content type",
			write:    func(w http.ResponseWriter) { WriteResponseBytes(w, "", []byte("raw"), http.StatusAccepted) },
			wantCode: http.StatusAccepted,
			wantType: "",
			wantBody: "raw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.write(rr)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantType, rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusConflict, map[string]any{"success": false, "error": "already running"})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, ContentType.JSON, rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"already running"}`, rr.Body.String())
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusOK, map[string]float64{"rate": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
