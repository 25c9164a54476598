// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-material-keeper/internal/app"
	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/MKhiriev/go-material-keeper/internal/store"
	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h, m := newTestHandler(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	registered := models.User{UserID: 42, Login: "alice", PasswordHash: "hash", CreatedAt: created}
	m.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Login: "alice", Password: "secret"}).Return(registered, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), registered).Return(models.Token{SignedString: "signed"}, nil)

	rec := serve(h, jsonRequest(http.MethodPost, "/api/user/register", `{"login":"alice","password":"secret"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alice", got["login"])
	assert.NotContains(t, got, "password")
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{"malformed JSON", `{"login":`, nil, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"invalid data", `{"login":"a b","password":"x"}`, service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"login taken", `{"login":"alice","password":"x"}`, store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
		{"unexpected", `{"login":"alice","password":"x"}`, errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.serviceErr != nil {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rec := serve(h, jsonRequest(http.MethodPost, "/api/user/register", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestRegister_TokenCreationFailed(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1, Login: "alice"}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := serve(h, jsonRequest(http.MethodPost, "/api/user/register", `{"login":"alice","password":"secret"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t)

	found := models.User{UserID: 7, Login: "bob"}
	m.auth.EXPECT().Login(gomock.Any(), models.User{Login: "bob", Password: "pw"}).Return(found, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), found).Return(models.Token{SignedString: "tok"}, nil)

	rec := serve(h, jsonRequest(http.MethodPost, "/api/user/login", `{"login":"bob","password":"pw"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)

	rec := serve(h, jsonRequest(http.MethodPost, "/api/user/login", `{"login":"bob","password":"nope"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgInvalidLoginPassword, strings.TrimSpace(rec.Body.String()))
}
