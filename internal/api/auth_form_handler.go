package api

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/phrazzld/mocksy/internal/api/shared"
	"github.com/phrazzld/mocksy/internal/authform"
	"github.com/phrazzld/mocksy/internal/domain"
	"github.com/phrazzld/mocksy/internal/events"
	"github.com/phrazzld/mocksy/internal/platform/logger"
	"github.com/phrazzld/mocksy/internal/service/flash"
)

// AuthFormHandler serves the sign-in and sign-up pages.
type AuthFormHandler struct {
	flash         *flash.Service
	authenticator authform.Authenticator
	emitter       events.EventEmitter
	pages         *template.Template
}

// NewAuthFormHandler creates a new AuthFormHandler with the given dependencies.
// emitter may be nil.
func NewAuthFormHandler(
	flashService *flash.Service,
	authenticator authform.Authenticator,
	emitter events.EventEmitter,
) (*AuthFormHandler, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &AuthFormHandler{
		flash:         flashService,
		authenticator: authenticator,
		emitter:       emitter,
		pages:         pages,
	}, nil
}

// redirectNavigator remembers where the form asked to go; the handler turns
// that into a 303 once the submission has resolved.
type redirectNavigator struct {
	path string
}

func (n *redirectNavigator) NavigateTo(_ context.Context, path string) {
	n.path = path
}

// Show renders the empty form for mode, with any pending notification.
func (h *AuthFormHandler) Show(mode domain.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := h.flash.Pop(w, r)
		h.render(w, r, http.StatusOK, newAuthPage(mode, domain.FormValues{}, nil, f))
	}
}

// Submit handles a POST of the form in mode.
func (h *AuthFormHandler) Submit(mode domain.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		values, err := shared.DecodeForm(w, r)
		if err != nil {
			log.Debug("failed to decode auth form", "error", err, "mode", mode)
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid form submission")
			return
		}

		notifier := h.flash.NewCookieNotifier(w)
		navigator := &redirectNavigator{}
		form, err := authform.New(mode, authform.Deps{
			Authenticator: h.authenticator,
			Notifier:      notifier,
			Navigator:     navigator,
			Emitter:       h.emitter,
		})
		if err != nil {
			log.Error("failed to build auth form", "error", err, "mode", mode)
			shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
			return
		}

		err = form.HandleSubmit(r.Context(), values)

		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			log.Debug("auth form rejected", "mode", mode, "fields", len(verr.Fields))
			h.render(w, r, http.StatusUnprocessableEntity,
				newAuthPage(mode, values.Redacted(), verr.Messages(), nil))
		case err != nil:
			h.render(w, r, MapErrorToStatusCode(err), newAuthPage(mode, values.Redacted(), nil,
				&flash.Flash{Kind: flash.KindError, Message: GetSafeErrorMessage(err)}))
		default:
			// A failed submission stays on the form's own page, where the
			// error notification is shown.
			target := navigator.path
			if target == "" {
				target = mode.Path()
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
		}
	}
}

// Home renders the landing page a successful sign-in navigates to.
func (h *AuthFormHandler) Home(w http.ResponseWriter, r *http.Request) {
	f := h.flash.Pop(w, r)
	h.render(w, r, http.StatusOK, pageData{Title: "Home", Flash: f})
}
