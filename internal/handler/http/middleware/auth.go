package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/auth"
	"github.com/utiliops/fieldforce-backend-go/internal/handler/http/response"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/jwt"
)

// AuthRequired validates the verified token: it must be an access token and
// must not have been revoked.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			raw := jwtauth.TokenFromHeader(r)
			if raw != "" && jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrRevokedToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
