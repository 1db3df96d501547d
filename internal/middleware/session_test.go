package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-venue-manager/internal/auth"
)

// fakeVerifier counts resolutions so tests can assert the short-circuit for
// missing cookies.
type fakeVerifier struct {
	user  *auth.User
	err   error
	calls int
}

func (v *fakeVerifier) ResolveUser(_ context.Context, _ string) (*auth.User, error) {
	v.calls++
	return v.user, v.err
}

// runSession sends one request through the given middleware wrapping a probe
// handler that records whether it ran and what identity it saw.
func runSession(t *testing.T, mw echo.MiddlewareFunc, cookie *http.Cookie) (rec *httptest.ResponseRecorder, nextRan bool, seenID string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := mw(func(c echo.Context) error {
		nextRan = true
		seenID, _ = c.Get("user_id").(string)
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, nextRan, seenID
}

func TestRequireSession(t *testing.T) {
	t.Run("missing cookie is rejected without a remote call", func(t *testing.T) {
		v := &fakeVerifier{}
		rec, nextRan, _ := runSession(t, RequireSession(v), nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if v.calls != 0 {
			t.Errorf("verifier called %d times for a cookieless request", v.calls)
		}
		if nextRan {
			t.Error("handler ran without a session")
		}
	})

	t.Run("empty cookie value counts as missing", func(t *testing.T) {
		v := &fakeVerifier{}
		rec, _, _ := runSession(t, RequireSession(v), &http.Cookie{Name: SessionCookie, Value: ""})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if v.calls != 0 {
			t.Errorf("verifier called %d times for an empty token", v.calls)
		}
	})

	t.Run("rejected token is a 401", func(t *testing.T) {
		v := &fakeVerifier{err: auth.ErrUnauthenticated}
		rec, nextRan, _ := runSession(t, RequireSession(v), &http.Cookie{Name: SessionCookie, Value: "expired"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if v.calls != 1 {
			t.Errorf("verifier calls = %d, want 1", v.calls)
		}
		if nextRan {
			t.Error("handler ran with a rejected token")
		}
	})

	t.Run("resolved identity reaches the handler", func(t *testing.T) {
		v := &fakeVerifier{user: &auth.User{ID: "user-42", Email: "a@b.c"}}
		rec, nextRan, seenID := runSession(t, RequireSession(v), &http.Cookie{Name: SessionCookie, Value: "good"})
		if rec.Code != http.StatusOK || !nextRan {
			t.Fatalf("expected handler to run with 200, got %d (ran=%v)", rec.Code, nextRan)
		}
		if seenID != "user-42" {
			t.Errorf("user_id = %q, want user-42", seenID)
		}
	})

	t.Run("a user without an id is rejected", func(t *testing.T) {
		v := &fakeVerifier{user: &auth.User{}}
		rec, nextRan, _ := runSession(t, RequireSession(v), &http.Cookie{Name: SessionCookie, Value: "odd"})
		if rec.Code != http.StatusUnauthorized || nextRan {
			t.Fatalf("expected 401 without handler run, got %d (ran=%v)", rec.Code, nextRan)
		}
	})
}

func TestRequireSessionPage(t *testing.T) {
	t.Run("missing cookie redirects to the entry page", func(t *testing.T) {
		v := &fakeVerifier{}
		rec, nextRan, _ := runSession(t, RequireSessionPage(v), nil)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
			t.Errorf("redirect to %q, want /", loc)
		}
		if v.calls != 0 || nextRan {
			t.Errorf("cookieless page request did work: calls=%d ran=%v", v.calls, nextRan)
		}
	})

	t.Run("rejected token redirects instead of a 401", func(t *testing.T) {
		v := &fakeVerifier{err: auth.ErrUnauthenticated}
		rec, _, _ := runSession(t, RequireSessionPage(v), &http.Cookie{Name: SessionCookie, Value: "bad"})
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
	})

	t.Run("valid session serves the page", func(t *testing.T) {
		v := &fakeVerifier{user: &auth.User{ID: "user-42"}}
		rec, nextRan, seenID := runSession(t, RequireSessionPage(v), &http.Cookie{Name: SessionCookie, Value: "good"})
		if rec.Code != http.StatusOK || !nextRan {
			t.Fatalf("expected page handler to run, got %d (ran=%v)", rec.Code, nextRan)
		}
		if seenID != "user-42" {
			t.Errorf("user_id = %q", seenID)
		}
	})
}
