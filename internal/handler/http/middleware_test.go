// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/app"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/service"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/utils"
)

func gzipData(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses client trace id", incoming: "my-trace"},
		{name: "generates trace id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, http.StatusNoContent, rr.Code)
		})
	}
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var got []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipData(t, []byte(`{"points":1}`))))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"points":1}`, string(got))
}

func TestWithGZip_RejectsInvalidStream(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]int{"points": 100}, http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	plain, err := utils.GunzipBytes(rr.Body.Bytes())
	require.NoError(t, err)
	assert.JSONEq(t, `{"points":100}`, string(plain))
}

func TestWithGZip_PlainResponseWithoutAcceptEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain"))
	})

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID string
	}{
		{name: "valid", header: bearer(t, "user-9"), wantStatus: http.StatusOK, wantUserID: "user-9"},
		{name: "missing", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var userID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sync/download", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantUserID, userID)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}

func TestUploadHashing_RestoresBody(t *testing.T) {
	h, _ := newTestHandler(t)
	body := []byte(`{"userId":"u","sessionId":"s","data":{"points":1}}`)
	body = append(body[:len(body)-1], []byte(`,"hash":"`+utils.NewHasher(testHashKey).HexSum([]byte(`{"points":1}`))+`"}`)...)

	var got []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
	})

	rr := httptest.NewRecorder()
	h.uploadHashing(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, body, got)
}

func TestUploadHashing_MissingHashRejected(t *testing.T) {
	h, _ := newTestHandler(t)
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	rr := httptest.NewRecorder()
	h.uploadHashing(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"data":{}}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgHashMismatch, strings.TrimSpace(rr.Body.String()))
	assert.False(t, called)
}

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Write([]byte("hello"))
	w.WriteHeader(http.StatusTeapot)
	w.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutes_UnknownMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/sync/upload", http.StatusNotFound},
		{http.MethodDelete, "/api/sync/download", http.StatusNotFound},
		{http.MethodPost, "/api/version/", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
		{http.MethodPost, "/api/sync/download", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, "", nil)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestRoutes_GzipUpload(t *testing.T) {
	h, records := newTestHandler(t)
	router := h.Init()

	payload := []byte(`{"userId":"user-1","sessionId":"dev-A","data":{"points":7},"hash":"` +
		utils.NewHasher(testHashKey).HexSum([]byte(`{"points":7}`)) + `"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/upload", bytes.NewReader(gzipData(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	assert.JSONEq(t, `7`, string(records.records["user-1"].Data["points"]))
}

func TestWithBodyLimit_RejectsExpandedGzip(t *testing.T) {
	// compresses to a few KiB, expands far past the cap
	payload := []byte(`{"userId":"user-1","sessionId":"dev-A","data":{"points":7},"pad":"` +
		strings.Repeat("a", 4<<20) + `"}`)
	compressed := gzipData(t, payload)
	require.Less(t, len(compressed), testMaxBodyBytes)

	hashed, hashedRecords := newTestHandler(t)
	plainRecords := newMemoryRecords()
	plain := NewHandler(newTestServices(plainRecords), "", testMaxBodyBytes, logger.Nop())

	tests := []struct {
		name    string
		h       *Handler
		records *memoryRecords
	}{
		{name: "hash check reads the body", h: hashed, records: hashedRecords},
		{name: "upload decodes the body", h: plain, records: plainRecords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/sync/upload", bytes.NewReader(compressed))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Authorization", bearer(t, "user-1"))
			rr := httptest.NewRecorder()
			tt.h.Init().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
			assert.Equal(t, app.MsgPayloadTooLarge, strings.TrimSpace(rr.Body.String()))
			assert.Empty(t, tt.records.records)
		})
	}
}

func TestWithBodyLimit_Disabled(t *testing.T) {
	records := newMemoryRecords()
	h := NewHandler(newTestServices(records), "", 0, logger.Nop())
	body := []byte(`{"userId":"user-1","sessionId":"dev-A","data":{"points":1},"pad":"` +
		strings.Repeat("a", 2*testMaxBodyBytes) + `"}`)

	rr := doRequest(t, h.Init(), http.MethodPost, "/api/sync/upload", bearer(t, "user-1"), body)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestBodyError(t *testing.T) {
	assert.ErrorIs(t, bodyError(&http.MaxBytesError{Limit: 10}), ErrPayloadTooLarge)
	assert.ErrorIs(t, bodyError(io.ErrUnexpectedEOF), service.ErrInvalidDataProvided)

	status, msg := responseFromError(bodyError(&http.MaxBytesError{Limit: 10}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, app.MsgPayloadTooLarge, msg)
}
