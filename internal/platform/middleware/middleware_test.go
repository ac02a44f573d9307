package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type MiddlewareSuite struct {
	suite.Suite

	logger *slog.Logger
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareSuite))
}

func (s *MiddlewareSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *MiddlewareSuite) TestRequestID() {
	s.Run("generated when absent", func() {
		var captured string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		s.NotEmpty(captured)
		s.Equal(captured, rec.Header().Get("X-Request-ID"))
	})

	s.Run("honors upstream header", func() {
		var captured string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id")
		h.ServeHTTP(httptest.NewRecorder(), req)

		s.Equal("upstream-id", captured)
	})
}

func (s *MiddlewareSuite) TestRecovery() {
	h := Recovery(s.logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"errors":["Internal Server Error"]}`, rec.Body.String())
}

func (s *MiddlewareSuite) TestIdentify() {
	const signingKey = "test-signing-key"

	identify := func(req *http.Request) (apiKey, userID string) {
		h := Identify(signingKey, s.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey = GetAPIKey(r.Context())
			userID = GetUserID(r.Context())
		}))
		h.ServeHTTP(httptest.NewRecorder(), req)
		return apiKey, userID
	}

	s.Run("api key from header", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("API-Key", "abc123")

		apiKey, _ := identify(req)
		s.Equal("abc123", apiKey)
	})

	s.Run("api key from query parameter", func() {
		req := httptest.NewRequest(http.MethodGet, "/?apikey=qp456", nil)

		apiKey, _ := identify(req)
		s.Equal("qp456", apiKey)
	})

	s.Run("valid bearer token contributes user id", func() {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-7"}).
			SignedString([]byte(signingKey))
		s.Require().NoError(err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		_, userID := identify(req)
		s.Equal("user-7", userID)
	})

	s.Run("invalid token never rejects", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		rec := httptest.NewRecorder()
		var served bool
		h := Identify(signingKey, s.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			served = true
			s.Empty(GetUserID(r.Context()))
		}))
		h.ServeHTTP(rec, req)

		s.True(served)
		s.Equal(http.StatusOK, rec.Code)
	})
}
