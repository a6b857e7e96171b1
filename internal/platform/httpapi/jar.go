package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"sync"
	"time"
)

// PersistentJar keeps the auth cookie across process restarts. The server
// sets an HTTP-only session cookie on login; persisting the jar to disk is
// the terminal-client analog of the browser holding that cookie.
//
// cookiejar.Jar.Cookies only hands back name and value, so the jar records
// each cookie's attributes itself as they arrive in SetCookies.
type PersistentJar struct {
	mu     sync.Mutex
	inner  *cookiejar.Jar
	path   string
	site   *url.URL
	stored map[string]storedCookie
}

type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

func NewPersistentJar(path string, site *url.URL) (*PersistentJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("new cookie jar: %w", err)
	}
	j := &PersistentJar{inner: inner, path: path, site: site, stored: map[string]storedCookie{}}
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

func (j *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)
	now := time.Now()
	for _, c := range cookies {
		expires := c.Expires
		if c.MaxAge > 0 {
			expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
		// MaxAge<0 and past expiry are the server deleting the cookie.
		if c.MaxAge < 0 || (!expires.IsZero() && expires.Before(now)) {
			delete(j.stored, c.Name)
			continue
		}
		j.stored[c.Name] = storedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
	}
	// Persistence is best effort; a failed save only costs a re-login.
	_ = j.save()
}

// Clear drops all cookies and the on-disk copy. Called on logout so the
// client can never look logged in after the auth session ended.
func (j *PersistentJar) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	inner, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("reset cookie jar: %w", err)
	}
	j.inner = inner
	j.stored = map[string]storedCookie{}
	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cookie file: %w", err)
	}
	return nil
}

func (j *PersistentJar) load() error {
	raw, err := os.ReadFile(j.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read cookie file: %w", err)
	}
	var stored []storedCookie
	if err := json.Unmarshal(raw, &stored); err != nil {
		// A corrupt jar means a re-login, not a broken client.
		return nil
	}
	now := time.Now()
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		if !s.Expires.IsZero() && s.Expires.Before(now) {
			continue
		}
		j.stored[s.Name] = s
		cookies = append(cookies, &http.Cookie{
			Name:     s.Name,
			Value:    s.Value,
			Path:     s.Path,
			Domain:   s.Domain,
			Expires:  s.Expires,
			Secure:   s.Secure,
			HttpOnly: s.HttpOnly,
		})
	}
	j.inner.SetCookies(j.site, cookies)
	return nil
}

func (j *PersistentJar) save() error {
	stored := make([]storedCookie, 0, len(j.stored))
	for _, s := range j.stored {
		stored = append(stored, s)
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return os.WriteFile(j.path, raw, 0o600)
}
