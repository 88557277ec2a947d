package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"warble/dal"
	"warble/shared"
	"warble/test/mocks"
)

type nopLogger struct{}

func (l *nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (l *nopLogger) Debugf(format string, args ...interface{})    {}
func (l *nopLogger) Info(msg interface{}, keyvals ...interface{}) {}
func (l *nopLogger) Infof(format string, args ...interface{})     {}
func (l *nopLogger) Warn(msg interface{}, keyvals ...interface{}) {}
func (l *nopLogger) Warnf(format string, args ...interface{})     {}
func (l *nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (l *nopLogger) Errorf(format string, args ...interface{})     {}
func (l *nopLogger) Printf(format string, args ...interface{})     {}

func TestApiAuth(t *testing.T) {

	cfg := shared.Config{}
	cfg.Secrets.ApiKeys = []string{"sekrit-1", "sekrit-2"}
	hg := apiHandlerGroup{cfg: &cfg, logger: &nopLogger{}}

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})
	handler := hg.authMW(next)

	// No key at all
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/posts/top", nil)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)

	// Wrong key
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/posts/top", nil)
	req.Header.Set(apiKeyHeader, "not-a-key")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)

	// Either configured key passes through
	for _, key := range cfg.Secrets.ApiKeys {
		nextCalled = false
		rec = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/posts/top", nil)
		req.Header.Set(apiKeyHeader, key)
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, nextCalled)
	}
}

func TestPostUsers(t *testing.T) {

	ctrl := gomock.NewController(t)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockObs := mocks.NewMockIRequestObserver(ctrl)
	mockMetrics.EXPECT().StartApiRequestIn("users").Return(mockObs).AnyTimes()
	mockObs.EXPECT().Finish().AnyTimes()
	mockUDir := mocks.NewMockIUserDirectory(ctrl)

	hg := apiHandlerGroup{
		cfg:     &shared.Config{Host: "warble.example"},
		logger:  &nopLogger{},
		metrics: mockMetrics,
		udir:    mockUDir,
	}

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/users", strings.NewReader(body))
		hg.postUsers(rec, req)
		return rec
	}

	// Fresh handle
	mockUDir.EXPECT().RegisterUser("pixie", "Pixie", "").
		Return(&dal.Account{Handle: "pixie", UserUrl: "https://warble.example/u/pixie"}, nil)
	rec := post(`{"handle": "pixie", "name": "Pixie"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Taken handle: nil account, no error
	mockUDir.EXPECT().RegisterUser("pixie", "Pixie", "").Return(nil, nil)
	rec = post(`{"handle": "pixie", "name": "Pixie"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
