package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkguid"
)

// Endpoint is the signature every module handler implements. The returned
// value is written as {"data": value}.
type Endpoint func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux  *chi.Mux
	uuid pkguid.StringID
}

type successResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Message  string `json:"message"`
	Code     string `json:"code"`
	Redirect string `json:"redirect,omitempty"`
}

func NewRouter(uuid pkguid.StringID) *Router {
	mux := chi.NewRouter()
	r := &Router{mux: mux, uuid: uuid}

	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)
	mux.Use(r.observe)
	mux.Use(r.clientID)

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "endpoint not found", Code: string(pkgerror.CodeNotFound)})
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed", Code: string(pkgerror.CodeInvalidInput)})
	})

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, successResponse{Data: map[string]string{"status": "ok"}})
	})

	return r
}

func (r *Router) GET(path string, e Endpoint) {
	r.mux.Get(path, r.serve(e))
}

func (r *Router) POST(path string, e Endpoint) {
	r.mux.Post(path, r.serve(e))
}

func (r *Router) DELETE(path string, e Endpoint) {
	r.mux.Delete(path, r.serve(e))
}

func (r *Router) Handle(path string, h http.Handler) {
	r.mux.Handle(path, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) serve(e Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		data, err := e(req.Context(), req)
		if err != nil {
			writeError(req.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Data: data})
	}
}

// PathParam returns the named chi URL parameter of the current route.
func PathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var e *pkgerror.Error
	if !errors.As(err, &e) {
		e = pkgerror.NewServer(err)
	}

	if e.Type() == pkgerror.TypeServer {
		slog.ErrorContext(ctx, "request failed", "error", err)
	}

	writeJSON(w, statusFromCode(e.Code()), errorResponse{
		Message:  e.Msg(),
		Code:     string(e.Code()),
		Redirect: e.Redirect(),
	})
}

func statusFromCode(code pkgerror.Code) int {
	switch code {
	case pkgerror.CodeInvalidInput:
		return http.StatusBadRequest
	case pkgerror.CodeUnauthorized:
		return http.StatusUnauthorized
	case pkgerror.CodeNotFound:
		return http.StatusNotFound
	case pkgerror.CodeConflict:
		return http.StatusConflict
	case pkgerror.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,errchkjson // client went away
	json.NewEncoder(w).Encode(body)
}

func (r *Router) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		observeRequest(req.Method, route, status, elapsed)
		slog.InfoContext(req.Context(), "http request",
			"method", req.Method,
			"route", route,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"request_id", middleware.GetReqID(req.Context()),
		)
	})
}
