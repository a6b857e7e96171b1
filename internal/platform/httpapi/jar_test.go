package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"praxis/internal/platform/httpapi"
)

func siteURL(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("http://api.example.test")
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	return u
}

func TestJarPersistsAcrossInstances(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cookies.json")
	site := siteURL(t)

	first, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	first.SetCookies(site, []*http.Cookie{{Name: "PHPSESSID", Value: "v1", Path: "/"}})

	second, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("reopen jar: %v", err)
	}
	cookies := second.Cookies(site)
	if len(cookies) != 1 || cookies[0].Name != "PHPSESSID" || cookies[0].Value != "v1" {
		t.Fatalf("unexpected cookies after reopen: %+v", cookies)
	}
}

func TestJarClearRemovesFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cookies.json")
	site := siteURL(t)

	jar, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	jar.SetCookies(site, []*http.Cookie{{Name: "PHPSESSID", Value: "v1", Path: "/"}})
	if err := jar.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := jar.Cookies(site); len(got) != 0 {
		t.Fatalf("expected empty jar after clear, got %+v", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected cookie file removed, stat err = %v", err)
	}
}

func TestJarIgnoresCorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cookies.json")
	if err := os.WriteFile(path, []byte("{{{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	jar, err := httpapi.NewPersistentJar(path, siteURL(t))
	if err != nil {
		t.Fatalf("new jar on corrupt file: %v", err)
	}
	if got := jar.Cookies(siteURL(t)); len(got) != 0 {
		t.Fatalf("expected empty jar, got %+v", got)
	}
}

func TestJarPersistsCookieAttributes(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cookies.json")
	site := siteURL(t)

	jar, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	jar.SetCookies(site, []*http.Cookie{{
		Name:     "PHPSESSID",
		Value:    "v1",
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
	}})

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read jar file: %v", err)
	}
	var stored []struct {
		Name     string    `json:"name"`
		Path     string    `json:"path"`
		Expires  time.Time `json:"expires"`
		HttpOnly bool      `json:"http_only"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("unmarshal jar file: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected one stored cookie, got %d", len(stored))
	}
	if stored[0].Path != "/" || !stored[0].HttpOnly {
		t.Fatalf("stored cookie lost attributes: %+v", stored[0])
	}
	if !stored[0].Expires.Equal(expires) {
		t.Fatalf("stored expiry = %v, want %v", stored[0].Expires, expires)
	}
}

func TestJarMaxAgeBecomesStoredExpiry(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cookies.json")
	site := siteURL(t)

	jar, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	jar.SetCookies(site, []*http.Cookie{{Name: "PHPSESSID", Value: "v1", Path: "/", MaxAge: 3600}})

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read jar file: %v", err)
	}
	var stored []struct {
		Expires time.Time `json:"expires"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("unmarshal jar file: %v", err)
	}
	if len(stored) != 1 || stored[0].Expires.Before(time.Now()) {
		t.Fatalf("max-age cookie should persist with a future expiry, got %+v", stored)
	}
}

func TestJarDropsCookieDeletedByServer(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cookies.json")
	site := siteURL(t)

	jar, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	jar.SetCookies(site, []*http.Cookie{{Name: "PHPSESSID", Value: "v1", Path: "/"}})
	jar.SetCookies(site, []*http.Cookie{{Name: "PHPSESSID", Value: "", Path: "/", MaxAge: -1}})

	reopened, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("reopen jar: %v", err)
	}
	if got := reopened.Cookies(site); len(got) != 0 {
		t.Fatalf("expected deleted cookie gone after reopen, got %+v", got)
	}
}

func TestJarSkipsExpiredCookies(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cookies.json")
	site := siteURL(t)

	jar, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	jar.SetCookies(site, []*http.Cookie{{
		Name:    "PHPSESSID",
		Value:   "stale",
		Path:    "/",
		Expires: time.Now().Add(time.Hour),
	}})

	// Rewrite the stored copy with an already-expired timestamp.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read jar file: %v", err)
	}
	rewritten := []byte(`[{"name":"PHPSESSID","value":"stale","path":"/","expires":"2000-01-01T00:00:00Z"}]`)
	if len(raw) == 0 {
		t.Fatal("expected jar file to be written")
	}
	if err := os.WriteFile(path, rewritten, 0o600); err != nil {
		t.Fatalf("rewrite jar file: %v", err)
	}

	reopened, err := httpapi.NewPersistentJar(path, site)
	if err != nil {
		t.Fatalf("reopen jar: %v", err)
	}
	if got := reopened.Cookies(site); len(got) != 0 {
		t.Fatalf("expected expired cookie dropped, got %+v", got)
	}
}
