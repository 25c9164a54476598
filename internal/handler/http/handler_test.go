package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/mock"
	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth     *mock.MockAuthService
	material *mock.MockMaterialService
	appInfo  *mock.MockAppInfoService
	health   *mock.MockHealthService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testServices{
		auth:     mock.NewMockAuthService(ctrl),
		material: mock.NewMockMaterialService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		health:   mock.NewMockHealthService(ctrl),
	}

	h, err := NewHandler(&service.Services{
		AuthService:     m.auth,
		MaterialService: m.material,
		AppInfoService:  m.appInfo,
		HealthService:   m.health,
	}, config.Server{}, logger.Nop())
	require.NoError(t, err)

	return h, m
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// withSession adds a session cookie and expects it to resolve to alice (42).
func withSession(req *http.Request, m testServices) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session-token"})
	m.auth.EXPECT().ParseToken(gomock.Any(), "session-token").
		Return(models.Token{SignedString: "session-token", UserID: 42, Login: "alice"}, nil)
	return req
}

// withBearer adds a bearer token and expects it to resolve to alice (42).
func withBearer(req *http.Request, m testServices) *http.Request {
	req.Header.Set("Authorization", "Bearer api-token")
	m.auth.EXPECT().ParseToken(gomock.Any(), "api-token").
		Return(models.Token{SignedString: "api-token", UserID: 42, Login: "alice"}, nil)
	return req
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{CookieSecure: true}

	h, err := NewHandler(svc, cfg, log)

	require.NoError(t, err)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
	require.NotNil(t, h.templates)
}

func TestParseTemplates_AllPagesPresent(t *testing.T) {
	templates, err := parseTemplates()
	require.NoError(t, err)

	for _, name := range []string{"login.html", "register.html", "index.html", "result.html", "history.html", "header", "footer", "error"} {
		assert.NotNil(t, templates.Lookup(name), "template %q", name)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "missing.html", pageData{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
