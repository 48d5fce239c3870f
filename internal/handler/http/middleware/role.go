package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
	"github.com/utiliops/fieldforce-backend-go/internal/handler/http/response"
)

func roleFromClaims(r *http.Request) (role.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return role.Normalize(roleStr), true
}

// RequireFieldLeadership admits supervisors and above.
func RequireFieldLeadership(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rl, ok := roleFromClaims(r)
		if !ok || !rl.HasFieldLeadershipPrivileges() {
			response.Forbidden(w, "Supervisor access or above required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireManagement admits managers and above.
func RequireManagement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rl, ok := roleFromClaims(r)
		if !ok || !rl.HasManagementPrivileges() {
			response.Forbidden(w, "Management access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireFullControl admits executives only.
func RequireFullControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rl, ok := roleFromClaims(r)
		if !ok || !rl.HasFullControl() {
			response.Forbidden(w, "Executive access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole admits an exact role set.
func RequireRole(allowed ...role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rl, ok := roleFromClaims(r)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}
			for _, a := range allowed {
				if rl == a {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, fmt.Sprintf("Insufficient permissions for role '%s'", rl))
		})
	}
}
