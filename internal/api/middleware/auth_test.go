package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s stubVerifier) VerifyToken(string) (string, error) {
	return s.userID, s.err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, "good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(stubVerifier{userID: "64b7f0c2a1"})(func(c echo.Context) error {
		called = true
		if UserID(c) != "64b7f0c2a1" {
			t.Fatalf("user_id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		err     error
		wantMsg string
	}{
		{name: "missing header", token: "", wantMsg: "No token, authorization denied"},
		{name: "blank header", token: "   ", wantMsg: "No token, authorization denied"},
		{name: "invalid token", token: "forged", err: errors.New("bad signature"), wantMsg: "Token is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Auth(stubVerifier{err: tt.err})(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if he.Code != http.StatusUnauthorized || he.Message != tt.wantMsg {
				t.Fatalf("unexpected rejection: %d %v", he.Code, he.Message)
			}
		})
	}
}

func TestUserID_OutsideMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if UserID(c) != "" {
		t.Fatalf("expected empty user id")
	}
}
