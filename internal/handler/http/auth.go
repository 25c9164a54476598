package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-material-keeper/internal/app"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/utils"
	"github.com/MKhiriev/go-material-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.services.AuthService.RegisterUser, "*Handler.register")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.services.AuthService.Login, "*Handler.login")
}

// authenticate decodes the credentials, runs authFn and answers with the
// bearer token in the Authorization header and the user as JSON.
func (h *Handler) authenticate(
	w http.ResponseWriter,
	r *http.Request,
	authFn func(ctx context.Context, user models.User) (models.User, error),
	funcName string,
) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", funcName).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := authFn(ctx, user)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("login", user.Login).Msg("authentication rejected")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user authenticated")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.User{Login: foundUser.Login, CreatedAt: foundUser.CreatedAt}, http.StatusOK)
}
