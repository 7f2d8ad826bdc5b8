package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms issue PUT and DELETE requests via a
// hidden _method field. It must wrap the router, not run inside it:
// the router picks the handler chain by method before middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// ParseForm caches the parsed body, so form reads in
			// later handlers still see every field.
			if err := r.ParseForm(); err == nil {
				switch strings.ToUpper(r.PostFormValue("_method")) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
