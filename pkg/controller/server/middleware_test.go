package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pipeboard/pkg/controller/server"
	"github.com/m-mizutani/pipeboard/pkg/domain/mock"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// serveThrough routes one request through the server middleware to a handler that
// records its context.
func serveThrough(t *testing.T, req *http.Request, status int) (context.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var captured context.Context
	mux := server.New(&mock.UseCaseMock{}).Mux()
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		captured = r.Context()
		w.WriteHeader(status)
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return captured, w
}

func TestMiddleware(t *testing.T) {
	t.Run("request gets a logger and an echoed request ID", func(t *testing.T) {
		ctx, w := serveThrough(t, httptest.NewRequest(http.MethodGet, "/echo", nil), http.StatusOK)

		gt.False(t, logging.From(ctx) == logging.From(context.Background()))
		reqID, _ := logging.CtxRequestID(ctx)
		gt.V(t, reqID).NotEqual("")
		gt.V(t, w.Header().Get("X-Request-ID")).Equal(string(reqID))
	})

	t.Run("request ID from the caller is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		req.Header.Set("X-Request-ID", "jenkins-build-42")
		ctx, w := serveThrough(t, req, http.StatusOK)

		reqID, _ := logging.CtxRequestID(ctx)
		gt.V(t, string(reqID)).Equal("jenkins-build-42")
		gt.V(t, w.Header().Get("X-Request-ID")).Equal("jenkins-build-42")
	})

	t.Run("oversized request ID is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("x", 200))
		_, w := serveThrough(t, req, http.StatusOK)

		gt.V(t, len(w.Header().Get("X-Request-ID"))).NotEqual(200)
	})

	t.Run("handler status passes through", func(t *testing.T) {
		for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusServiceUnavailable} {
			_, w := serveThrough(t, httptest.NewRequest(http.MethodGet, "/echo", nil), status)
			gt.V(t, w.Code).Equal(status)
		}
	})

	t.Run("body without WriteHeader is 200", func(t *testing.T) {
		mux := server.New(&mock.UseCaseMock{}).Mux()
		mux.HandleFunc("/noheader", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/noheader", nil))
		gt.V(t, w.Code).Equal(http.StatusOK)
	})

	t.Run("panic in handler is recovered as 500", func(t *testing.T) {
		mux := server.New(&mock.UseCaseMock{}).Mux()
		mux.HandleFunc("/panic", func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
		gt.V(t, w.Code).Equal(http.StatusInternalServerError)
	})
}
