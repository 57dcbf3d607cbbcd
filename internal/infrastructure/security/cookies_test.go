package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSetSessionCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "tok-123", 30*24*time.Hour, false)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName {
		t.Fatalf("expected %q, got %q", SessionCookieName, c.Name)
	}
	if c.Value != "tok-123" {
		t.Fatalf("expected token value, got %q", c.Value)
	}
	if !c.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax")
	}
	if c.MaxAge != int((30 * 24 * time.Hour).Seconds()) {
		t.Fatalf("unexpected MaxAge %d", c.MaxAge)
	}
}

func TestClearSessionCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	ClearSessionCookie(rr, false)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Fatalf("expected MaxAge=-1, got %d", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Fatalf("expected empty value")
	}
}

func TestReadSessionCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := ReadSessionCookie(r); err == nil {
		t.Fatalf("expected error without cookie")
	}

	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-9"})
	v, err := ReadSessionCookie(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v != "tok-9" {
		t.Fatalf("expected tok-9, got %q", v)
	}
}
