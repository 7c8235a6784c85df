package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// Every gated path must bounce anonymous callers to the login view.
func TestGatedPathsRedirectAnonymous(t *testing.T) {
	app := newTestApp(t, htmlEchoEngine{}, t.TempDir())

	for _, path := range []string{"/home", "/customer", "/update", "/genpdf"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/" {
			t.Fatalf("%s: want 302 to /, got %d to %q", path, resp.StatusCode, resp.Header.Get("Location"))
		}
	}
}

// A cookie that is not a validly signed token is treated as anonymous.
func TestForgedSessionCookieRejected(t *testing.T) {
	app := newTestApp(t, htmlEchoEngine{}, t.TempDir())

	for _, val := range []string{"plain-sid", "a.b.c"} {
		req := httptest.NewRequest("GET", "/home", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: val})
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("cookie %q: want redirect, got %d", val, resp.StatusCode)
		}
	}
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t, htmlEchoEngine{}, t.TempDir())
	j := jar{}
	signupAndLogin(t, app, j, "alice@x.com", "pw123")

	if resp := j.get(t, app, "/home"); resp.StatusCode != http.StatusOK {
		t.Fatalf("home before logout: %d", resp.StatusCode)
	}

	if resp := j.postForm(t, app, "/logout", url.Values{}); resp.StatusCode != http.StatusFound {
		t.Fatalf("logout: %d", resp.StatusCode)
	}

	if resp := j.get(t, app, "/home"); resp.StatusCode != http.StatusFound {
		t.Fatalf("gated page still served after logout: %d", resp.StatusCode)
	}
}
