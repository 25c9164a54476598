package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-material-keeper/internal/accounting"
	"github.com/MKhiriev/go-material-keeper/internal/app"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/MKhiriev/go-material-keeper/internal/store"
	"github.com/MKhiriev/go-material-keeper/internal/utils"
	"github.com/MKhiriev/go-material-keeper/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", pageData{Title: "Log in"})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	page := pageData{Title: "Log in"}

	user, err := credentialsFromForm(r)
	if err != nil {
		page.Error = app.MsgInvalidDataProvided
		h.render(w, r, http.StatusBadRequest, "login.html", page)
		return
	}
	page.Username = user.Login

	foundUser, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrInvalidDataProvided):
			log.Info().Err(err).Str("login", user.Login).Msg("login rejected")
			page.Error = app.MsgInvalidUsernameOrPassword
			h.render(w, r, http.StatusUnauthorized, "login.html", page)
		default:
			log.Err(err).Str("func", "*Handler.loginSubmit").Msg("unexpected error occurred during user login")
			page.Error = app.MsgLoginFailed
			h.render(w, r, http.StatusInternalServerError, "login.html", page)
		}
		return
	}

	if err = h.startSession(r.Context(), w, foundUser); err != nil {
		log.Err(err).Str("func", "*Handler.loginSubmit").Msg("creation of token failed")
		page.Error = app.MsgLoginFailed
		h.render(w, r, http.StatusInternalServerError, "login.html", page)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", pageData{Title: "Register"})
}

func (h *Handler) registerSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	page := pageData{Title: "Register"}

	user, err := credentialsFromForm(r)
	if err != nil {
		page.Error = app.MsgInvalidDataProvided
		h.render(w, r, http.StatusBadRequest, "register.html", page)
		return
	}
	page.Username = user.Login

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			page.Error = app.MsgInvalidDataProvided
			h.render(w, r, http.StatusBadRequest, "register.html", page)
		case errors.Is(err, store.ErrLoginAlreadyExists):
			page.Error = app.MsgLoginAlreadyExists
			h.render(w, r, http.StatusConflict, "register.html", page)
		default:
			log.Err(err).Str("func", "*Handler.registerSubmit").Msg("unexpected error occurred during user registration")
			page.Error = app.MsgRegistrationFailed
			h.render(w, r, http.StatusInternalServerError, "register.html", page)
		}
		return
	}

	if err = h.startSession(r.Context(), w, registeredUser); err != nil {
		log.Err(err).Str("func", "*Handler.registerSubmit").Msg("creation of token failed")
		page.Error = app.MsgRegistrationFailed
		h.render(w, r, http.StatusInternalServerError, "register.html", page)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	login, _ := utils.GetLoginFromContext(r.Context())
	h.render(w, r, http.StatusOK, "index.html", pageData{Title: "Calculate", Login: login})
}

// indexSubmit runs one submission. A rejected or unsaved submission
// re-renders the form with the values the user typed; no report is shown
// unless the record was stored.
func (h *Handler) indexSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	login, _ := utils.GetLoginFromContext(ctx)
	page := pageData{Title: "Calculate", Login: login}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.indexSubmit").Msg("no user ID in context")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		page.Error = app.MsgInvalidMaterialInput
		h.render(w, r, http.StatusUnprocessableEntity, "index.html", page)
		return
	}

	page.Form = models.MaterialForm{
		InitialMaterial:    models.RawNumber(r.PostFormValue(accounting.FieldInitialMaterial)),
		MaterialPerProduct: models.RawNumber(r.PostFormValue(accounting.FieldMaterialPerProduct)),
		MaterialUsed:       models.RawNumber(r.PostFormValue(accounting.FieldMaterialUsed)),
	}

	submission, err := h.services.MaterialService.Submit(ctx, userID, page.Form)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMaterialInput) {
			page.Error = app.MsgInvalidMaterialInput
			h.render(w, r, http.StatusUnprocessableEntity, "index.html", page)
			return
		}
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Info().Err(err).Msg("account of the session is gone")
			h.clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		log.Err(err).Str("func", "*Handler.indexSubmit").Msg("submission was not saved")
		page.Error = app.MsgMaterialNotSaved
		h.render(w, r, http.StatusInternalServerError, "index.html", page)
		return
	}

	page.Title = "Result"
	page.Submission = &submission
	h.render(w, r, http.StatusOK, "result.html", page)
}

func (h *Handler) historyPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	login, _ := utils.GetLoginFromContext(ctx)
	page := pageData{Title: "History", Login: login}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.historyPage").Msg("no user ID in context")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	records, err := h.services.MaterialService.History(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.historyPage").Msg("history was not loaded")
		page.Error = app.MsgHistoryNotLoaded
		h.render(w, r, http.StatusInternalServerError, "history.html", page)
		return
	}

	page.History = make([]historyRow, 0, len(records))
	for _, record := range records {
		row := historyRow{Record: record}
		if report, err := accounting.Compute(record.MaterialInput); err == nil {
			row.Report = report
			row.Computed = true
		}
		page.History = append(page.History, row)
	}

	h.render(w, r, http.StatusOK, "history.html", page)
}

// startSession issues a token for user and stores it in the session cookie.
func (h *Handler) startSession(ctx context.Context, w http.ResponseWriter, user models.User) error {
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return err
	}

	h.setSessionCookie(w, token)
	return nil
}

func credentialsFromForm(r *http.Request) (models.User, error) {
	if err := r.ParseForm(); err != nil {
		return models.User{}, err
	}

	return models.User{
		Login:    strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}, nil
}
