package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"

	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/pkg/logger"
)

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Hijack lets the websocket upgrade take over the connection.
func (w *statusResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	w.wroteHeader = true
	return h.Hijack()
}

func (w *statusResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func wrap(w http.ResponseWriter) *statusResponseWriter {
	if srw, ok := w.(*statusResponseWriter); ok {
		return srw
	}
	return &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// RequestLogger logs one line per request, at a level picked by status.
func RequestLogger(next http.Handler) http.Handler {
	log := logger.For("http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := wrap(w)

		next.ServeHTTP(srw, r)

		var event *zerolog.Event
		switch {
		case srw.status >= 500:
			event = log.Error()
		case srw.status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("request")
	})
}

// Recover turns a handler panic into a logged stack and a 500 envelope.
func Recover(next http.Handler) http.Handler {
	log := logger.For("http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := wrap(w)

		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("recovered from panic")

				if !srw.wroteHeader {
					pkg.ErrorWithMessage(srw, http.StatusInternalServerError, "Internal server error")
				}
			}
		}()

		next.ServeHTTP(srw, r)
	})
}
