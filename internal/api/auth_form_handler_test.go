package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mocksy/internal/config"
	"github.com/phrazzld/mocksy/internal/domain"
	"github.com/phrazzld/mocksy/internal/events"
	"github.com/phrazzld/mocksy/internal/mocks"
	"github.com/phrazzld/mocksy/internal/service/flash"
)

const testFlashSecret = "thisisasecretkeythatis32charslong!!"

type handlerFixture struct {
	handler *AuthFormHandler
	flash   *flash.Service
	auth    *mocks.MockAuthenticator
	emitter *mocks.MockEventEmitter
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	flashService, err := flash.NewService(config.FlashConfig{Secret: testFlashSecret, TTLSeconds: 60})
	require.NoError(t, err)

	auth := &mocks.MockAuthenticator{}
	emitter := &mocks.MockEventEmitter{}
	handler, err := NewAuthFormHandler(flashService, auth, emitter)
	require.NoError(t, err)

	return &handlerFixture{handler: handler, flash: flashService, auth: auth, emitter: emitter}
}

func postForm(t *testing.T, h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func flashFrom(t *testing.T, s *flash.Service, rec *httptest.ResponseRecorder) *flash.Flash {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName && c.MaxAge > 0 {
			f, err := s.Decode(context.Background(), c.Value)
			require.NoError(t, err)
			return f
		}
	}
	return nil
}

func TestShow(t *testing.T) {
	t.Parallel()

	fx := newHandlerFixture(t)

	tests := []struct {
		mode        domain.Mode
		contains    []string
		notContains []string
	}{
		{
			mode: domain.ModeSignUp,
			contains: []string{
				`name="name"`, `name="email"`, `name="password"`,
				"Create an Account", "Have an account already?", `href="/sign-in"`,
				`action="/sign-up"`, "Practice Job interview with AI",
			},
		},
		{
			mode: domain.ModeSignIn,
			contains: []string{
				`name="email"`, `name="password"`, "Sign-in", "No account yet?", `href="/sign-up"`,
				`type="email"`, `type="password"`, `placeholder="you@example.com"`,
			},
			notContains: []string{`name="name"`},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.mode), func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			fx.handler.Show(tc.mode)(rec, httptest.NewRequest(http.MethodGet, tc.mode.Path(), nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			body := rec.Body.String()
			for _, s := range tc.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestShowDisplaysAndClearsFlash(t *testing.T) {
	t.Parallel()

	fx := newHandlerFixture(t)

	setRec := httptest.NewRecorder()
	require.NoError(t, fx.flash.Set(context.Background(), setRec,
		flash.Flash{Kind: flash.KindSuccess, Message: "Account Created Successfully. Please sign in."}))

	req := httptest.NewRequest(http.MethodGet, "/sign-in", nil)
	for _, c := range setRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	fx.handler.Show(domain.ModeSignIn)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account Created Successfully. Please sign in.")
	assert.Contains(t, rec.Body.String(), "toast-success")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0, "the flash should be consumed")
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mode         domain.Mode
		form         url.Values
		authErr      error
		wantStatus   int
		wantLocation string
		wantFlash    *flash.Flash
		wantAuthCall bool
		wantBody     []string
	}{
		{
			name:         "sign-up with short name is rejected inline",
			mode:         domain.ModeSignUp,
			form:         url.Values{"name": {"Al"}, "email": {"a@b.com"}, "password": {"abcd"}},
			wantStatus:   http.StatusUnprocessableEntity,
			wantAuthCall: false,
			wantBody:     []string{"must be at least 3 characters", `value="Al"`, `value="a@b.com"`},
		},
		{
			name:         "sign-up success redirects to sign-in",
			mode:         domain.ModeSignUp,
			form:         url.Values{"name": {"Alice"}, "email": {"a@b.com"}, "password": {"abcd"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/sign-in",
			wantFlash:    &flash.Flash{Kind: flash.KindSuccess, Message: "Account Created Successfully. Please sign in."},
			wantAuthCall: true,
		},
		{
			name:         "sign-in success without name redirects home",
			mode:         domain.ModeSignIn,
			form:         url.Values{"name": {""}, "email": {"a@b.com"}, "password": {"abcd"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/",
			wantFlash:    &flash.Flash{Kind: flash.KindSuccess, Message: "Signed in Successfully."},
			wantAuthCall: true,
		},
		{
			name:         "sign-in failure stays on sign-in",
			mode:         domain.ModeSignIn,
			form:         url.Values{"email": {"a@b.com"}, "password": {"abcd"}},
			authErr:      errors.New("invalid credentials"),
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/sign-in",
			wantFlash:    &flash.Flash{Kind: flash.KindError, Message: "There was an error: invalid credentials"},
			wantAuthCall: true,
		},
		{
			name:         "sign-in failure without message",
			mode:         domain.ModeSignIn,
			form:         url.Values{"email": {"a@b.com"}, "password": {"abcd"}},
			authErr:      errors.New(""),
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/sign-in",
			wantFlash:    &flash.Flash{Kind: flash.KindError, Message: "There was an unknown error"},
			wantAuthCall: true,
		},
		{
			name:         "invalid email is rejected inline",
			mode:         domain.ModeSignIn,
			form:         url.Values{"email": {"invalid-email"}, "password": {"abcd"}},
			wantStatus:   http.StatusUnprocessableEntity,
			wantAuthCall: false,
			wantBody:     []string{"must be a valid email address"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fx := newHandlerFixture(t)
			fx.auth.Err = tc.authErr

			rec := postForm(t, fx.handler.Submit(tc.mode), tc.mode.Path(), tc.form)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantLocation, rec.Header().Get("Location"))
			assert.Equal(t, tc.wantFlash, flashFrom(t, fx.flash, rec))
			assert.Equal(t, tc.wantAuthCall, fx.auth.CallCount() == 1)
			for _, s := range tc.wantBody {
				assert.Contains(t, rec.Body.String(), s)
			}
			assert.NotContains(t, rec.Body.String(), "abcd", "the password must never be echoed")
		})
	}
}

func TestSubmitEmitsEvent(t *testing.T) {
	t.Parallel()

	fx := newHandlerFixture(t)
	fx.auth.Err = errors.New("invalid credentials")

	postForm(t, fx.handler.Submit(domain.ModeSignIn), "/sign-in",
		url.Values{"email": {"a@b.com"}, "password": {"abcd"}})

	emitted := fx.emitter.Events()
	require.Len(t, emitted, 1)
	assert.Equal(t, events.OutcomeFailed, emitted[0].Outcome)
	assert.Empty(t, emitted[0].NavigatedTo)
}

func TestSubmitMalformedBody(t *testing.T) {
	t.Parallel()

	fx := newHandlerFixture(t)
	req := httptest.NewRequest(http.MethodPost, "/sign-in", strings.NewReader("email=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	fx.handler.Submit(domain.ModeSignIn)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid form submission")
	assert.Equal(t, 0, fx.auth.CallCount())
}

func TestSubmitInvalidMode(t *testing.T) {
	t.Parallel()

	fx := newHandlerFixture(t)
	rec := postForm(t, fx.handler.Submit(domain.Mode("admin")), "/admin",
		url.Values{"email": {"a@b.com"}, "password": {"abcd"}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, fx.auth.CallCount())
}

func TestHome(t *testing.T) {
	t.Parallel()

	fx := newHandlerFixture(t)

	setRec := httptest.NewRecorder()
	require.NoError(t, fx.flash.Set(context.Background(), setRec,
		flash.Flash{Kind: flash.KindSuccess, Message: "Signed in Successfully."}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range setRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	fx.handler.Home(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to Mocksy")
	assert.Contains(t, rec.Body.String(), "Signed in Successfully.")
	assert.NotContains(t, rec.Body.String(), "<form")
}
