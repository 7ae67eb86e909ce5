// Package middleware provides HTTP middleware for the swaffine API.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request with status, size, latency and the
// request ID set by chi's RequestID middleware.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			log.Printf("%s %s %d %dB %s reqid=%s",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(),
				time.Since(start), chimiddleware.GetReqID(r.Context()))
		}()

		next.ServeHTTP(ww, r)
	})
}
