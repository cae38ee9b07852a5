package pkgrouter

import (
	"context"
	"net/http"
	"strings"
)

const (
	ClientIDHeader = "X-Client-ID"
	ClientIDCookie = "amv_client"
)

type clientIDKey struct{}

// ClientID returns the id of the calling client. Every request that went
// through the router has one.
func ClientID(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey{}).(string)
	return id
}

// WithClientID is used by tests and the CLI to act on behalf of a client.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

func (r *Router) clientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimSpace(req.Header.Get(ClientIDHeader))
		if id == "" {
			if c, err := req.Cookie(ClientIDCookie); err == nil {
				id = strings.TrimSpace(c.Value)
			}
		}
		if id == "" {
			id = r.uuid.Generate()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientIDCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		w.Header().Set(ClientIDHeader, id)

		next.ServeHTTP(w, req.WithContext(WithClientID(req.Context(), id)))
	})
}
