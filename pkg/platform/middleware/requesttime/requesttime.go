// Package requesttime pins "now" for the duration of a request so every
// timestamp a resolution writes (score history day, audit time) agrees.
package requesttime

import (
	"net/http"
	"time"

	"billsplit/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request
// and stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
