package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-material-keeper/internal/adapter"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/utils"
	"github.com/MKhiriev/go-material-keeper/internal/validators"
	"github.com/MKhiriev/go-material-keeper/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	mu      sync.RWMutex
	session models.Token
	now     func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Token, error) {
	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := a.adapter.Register(ctx, user); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Str("login", user.Login).Msg("registration on server failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.openSession()
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := a.adapter.Login(ctx, user); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Str("login", user.Login).Msg("login on server failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.openSession()
}

func (a *clientAuthService) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.adapter.SetToken("")
	a.session = models.Token{}
}

func (a *clientAuthService) Session() (models.Token, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session.SignedString == "" {
		return models.Token{}, false
	}
	if !a.session.ExpiresAt.IsZero() && !a.now().Before(a.session.ExpiresAt) {
		return models.Token{}, false
	}

	return a.session, true
}

// openSession decodes the token the adapter just stored. The signature is
// not checked here: only the server can verify it.
func (a *clientAuthService) openSession() (models.Token, error) {
	signed := a.adapter.Token()
	if signed == "" {
		return models.Token{}, ErrNotAuthenticated
	}

	claims, err := utils.ParseUnverifiedClaims(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	token := models.Token{
		SignedString: signed,
		UserID:       userID,
		Login:        claims.Login,
	}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}

	a.mu.Lock()
	a.session = token
	a.mu.Unlock()

	a.logger.Debug().Int64("user_id", userID).Time("expires_at", token.ExpiresAt).Msg("session opened")
	return token, nil
}
