package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/confluence-bridge/shared/domain"
	jwt_internal "github.com/itchan-dev/confluence-bridge/shared/jwt"
	"github.com/itchan-dev/confluence-bridge/shared/logger"
	"github.com/itchan-dev/confluence-bridge/shared/utils"
)

// Key to store the client claims in the request context
type key int

const ClientClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a bearer token issued by this gateway
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenString == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="confluence-bridge"`)
				http.Error(w, "Missing bearer token", http.StatusUnauthorized)
				return
			}

			client, err := a.jwtService.DecodeToken(tokenString)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			logger.Log.Debug("authenticated request", "client", client.Name, "path", r.URL.Path)
			ctx := context.WithValue(r.Context(), ClientClaimsKey, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientFromContext retrieves the authenticated client, nil when auth is disabled
func GetClientFromContext(r *http.Request) *domain.Client {
	client, ok := r.Context().Value(ClientClaimsKey).(*domain.Client)
	if !ok {
		return nil
	}
	return client
}
