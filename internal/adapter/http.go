package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/utils"
	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /api/user/register and stores the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/user/login and stores the bearer token from the Authorization response
// header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var found models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&found).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.authenticate").Str("path", path).Msg("request failed")
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	h.SetToken(token)

	if found.Login == "" {
		found.Login = user.Login
	}
	found.Password = ""

	return found, nil
}

// SubmitMaterial implements [ServerAdapter]. It POSTs the form to
// /api/materials. Requires a bearer token.
func (h *httpServerAdapter) SubmitMaterial(ctx context.Context, form models.MaterialForm) (models.Submission, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Submission{}, err
	}

	var submission models.Submission
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		SetResult(&submission).
		Post("/api/materials")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.SubmitMaterial").Msg("request failed")
		return models.Submission{}, fmt.Errorf("submit material request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Submission{}, err
	}

	return submission, nil
}

// GetHistory implements [ServerAdapter]. It GETs /api/materials and returns
// the records in the order the server listed them. Requires a bearer token.
func (h *httpServerAdapter) GetHistory(ctx context.Context) ([]models.MaterialRecord, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var history models.HistoryResponse
	resp, err := req.SetResult(&history).Get("/api/materials")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.GetHistory").Msg("request failed")
		return nil, fmt.Errorf("get history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if history.Records == nil {
		history.Records = make([]models.MaterialRecord, 0)
	}
	if history.Length != len(history.Records) {
		return nil, fmt.Errorf("history length mismatch: declared %d, got %d", history.Length, len(history.Records))
	}

	return history.Records, nil
}

// GetVersion implements [ServerAdapter]. It GETs /api/version, which answers
// in text/plain.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	version := strings.TrimSpace(string(resp.Body()))
	if version == "" {
		return "", errors.New("server returned empty version")
	}

	return version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}
