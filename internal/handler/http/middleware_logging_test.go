package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-asset-keeper/internal/logger"
)

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: log}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/assets?x=1", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rr := serve(h.withLogging(next), req)

	require.Equal(t, http.StatusTeapot, rr.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/assets?x=1", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(len("short and stout")), entry["size"])
	assert.Contains(t, entry, "duration")
}

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantSize   int
	}{
		{
			name:       "implicit 200 on write",
			write:      func(w http.ResponseWriter) { w.Write([]byte("abc")) },
			wantStatus: http.StatusOK,
			wantSize:   3,
		},
		{
			name: "first WriteHeader wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "size accumulates",
			write: func(w http.ResponseWriter) {
				w.Write([]byte("ab"))
				w.Write([]byte("cde"))
			},
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rw := &responseWriter{ResponseWriter: rec}

			tt.write(rw)

			assert.Equal(t, tt.wantStatus, rw.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantSize, rw.size)
			assert.Same(t, rec, rw.Unwrap())
		})
	}
}
