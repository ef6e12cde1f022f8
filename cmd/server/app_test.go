package main

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mocksy/internal/config"
	"github.com/phrazzld/mocksy/internal/platform/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 0, LogLevel: "debug", ShutdownTimeoutSeconds: 5},
		Flash:  config.FlashConfig{Secret: "thisisasecretkeythatis32charslong!!", TTLSeconds: 60},
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *http.Client, *logger.TestLogBuffer) {
	t.Helper()

	l, logs := logger.NewTestLogger(t)
	app, err := newApplication(testConfig(), l)
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client, logs
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestNewApplicationRejectsBadFlashSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Flash.Secret = "short"

	l, _ := logger.NewTestLogger(t)
	_, err := newApplication(cfg, l)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize flash service")
}

func TestSignUpThenSignInFlow(t *testing.T) {
	srv, client, logs := newTestServer(t)

	// Sign up
	resp, err := client.PostForm(srv.URL+"/sign-up", url.Values{
		"name": {"Alice"}, "email": {"a@b.com"}, "password": {"abcd"},
	})
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/sign-in", resp.Header.Get("Location"))

	// Follow the redirect manually; the toast shows once
	resp, err = client.Get(srv.URL + "/sign-in")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Account Created Successfully. Please sign in.")

	resp, err = client.Get(srv.URL + "/sign-in")
	require.NoError(t, err)
	assert.NotContains(t, readBody(t, resp), "Account Created Successfully.")

	// Sign in
	resp, err = client.PostForm(srv.URL+"/sign-in", url.Values{
		"email": {"a@b.com"}, "password": {"abcd"},
	})
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, err = client.Get(srv.URL + "/")
	require.NoError(t, err)
	assert.Contains(t, readBody(t, resp), "Signed in Successfully.")

	logger.AssertLogContains(t, logs, "auth form submission resolved")
}

func TestSignUpValidationFailure(t *testing.T) {
	srv, client, _ := newTestServer(t)

	resp, err := client.PostForm(srv.URL+"/sign-up", url.Values{
		"name": {"Al"}, "email": {"a@b.com"}, "password": {"abcd"},
	})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "must be at least 3 characters")
	assert.Empty(t, resp.Header.Get("Location"))
}

func TestRouterMisc(t *testing.T) {
	srv, client, _ := newTestServer(t)

	resp, err := client.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, "OK", readBody(t, resp))

	resp, err = client.Get(srv.URL + "/forgot-password")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/sign-in", strings.NewReader(""))
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStartHTTPServerStopsOnContextCancel(t *testing.T) {
	l, logs := logger.NewTestLogger(t)
	app, err := newApplication(testConfig(), l)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(ctx, app.setupRouter())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	logger.AssertLogContains(t, logs, "Server shutdown completed")
}
