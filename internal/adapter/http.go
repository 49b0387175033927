// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/utils"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

const (
	uploadPath   = "/api/sync/upload"
	downloadPath = "/api/sync/download"
)

type httpCloudAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCloudAdapter constructs the HTTP/REST implementation of
// [CloudAdapter]. It normalises adapterCfg.HTTPAddress into a base URL,
// applies the request timeout and stores the configured bearer token.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPCloudAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (CloudAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	a := &httpCloudAdapter{client: client, logger: logger}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCloudAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCloudAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Upload implements [CloudAdapter]. The JSON body is gzip compressed and
// POSTed to /api/sync/upload.
func (h *httpCloudAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	hash, err := h.transportHash(req.Data)
	if err != nil {
		return models.UploadResponse{}, err
	}
	req.Hash = hash

	payload, err := json.Marshal(req)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("encode upload request: %w", err)
	}
	body, err := utils.GzipBytes(payload)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("compress upload request: %w", err)
	}

	var result models.UploadResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Content-Encoding", "gzip").
		SetBody(body).
		SetResult(&result).
		Post(uploadPath)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	h.logger.Debug().
		Str("user_id", req.UserID).
		Int("keys", len(req.Data)).
		Int("bytes", len(body)).
		Msg("uploaded bundle")

	return result, nil
}

// Fetch implements [CloudAdapter] with POST /api/sync/download.
func (h *httpCloudAdapter) Fetch(ctx context.Context, userID string) (models.DownloadResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DownloadRequest{UserID: userID}).
		Post(downloadPath)
	if err != nil {
		return models.DownloadResponse{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadResponse{}, err
	}

	var out models.DownloadResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.DownloadResponse{}, fmt.Errorf("decode download response: %w", err)
	}

	return out, nil
}

func (h *httpCloudAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// transportHash returns the hex HMAC of the JSON encoded bundle, or an empty
// string when no hash key is configured.
func (h *httpCloudAdapter) transportHash(data models.Bundle) (string, error) {
	if h.hasher == nil {
		return "", nil
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode bundle for hash: %w", err)
	}
	return h.hasher.HexSum(payload), nil
}
