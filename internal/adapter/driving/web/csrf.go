package web

import (
	"crypto/rand"
	"crypto/subtle"
	"net/http"
)

const (
	csrfCookieName = "potcatalog_csrf"
	csrfFormField  = "csrf_token"
)

// csrfToken returns the token every form on the page must echo back. A new
// token cookie is issued on the first visit.
func csrfToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(csrfCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	token := rand.Text()
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
	return token
}

// validateCSRF reports whether the posted token matches the cookie. The form
// must already be parsed.
func validateCSRF(r *http.Request) bool {
	c, err := r.Cookie(csrfCookieName)
	if err != nil || c.Value == "" {
		return false
	}
	posted := r.PostForm.Get(csrfFormField)
	return subtle.ConstantTimeCompare([]byte(posted), []byte(c.Value)) == 1
}
