// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func echoHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		w.Write(append([]byte("echo: "), body...))
	})
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzipped    bool
	}{
		{name: "gzip accepted", acceptEncoding: "gzip", wantGzipped: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip, br", wantGzipped: true},
		{name: "gzip with quality", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzipped: true},
		{name: "no accept-encoding", acceptEncoding: "", wantGzipped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/assets", bytes.NewBufferString("hi"))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rr := serve(withGZip(echoHandler(http.StatusAccepted)), req)

			assert.Equal(t, http.StatusAccepted, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "echo: hi", gunzip(t, rr.Body.Bytes()))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "echo: hi", rr.Body.String())
			}
		})
	}
}

func TestGZip_RequestBodyIsDecoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assets", bytes.NewReader(gzipBytes(t, []byte(`{"assets":[]}`))))
	req.Header.Set("Content-Encoding", "gzip")

	rr := serve(withGZip(echoHandler(http.StatusOK)), req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `echo: {"assets":[]}`, rr.Body.String())
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assets", bytes.NewBufferString("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")

	rr := serve(withGZip(echoHandler(http.StatusOK)), req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGZip_BodilessResponseStaysEmpty(t *testing.T) {
	created := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	req := httptest.NewRequest(http.MethodPost, "/assets", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := serve(withGZip(created), req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}
