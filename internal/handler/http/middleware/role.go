package middleware

import (
	"net/http"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func requireRole(roles ...profile.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			role := profile.Role(roleStr)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Insufficient permissions for role "+roleStr)
		})
	}
}

// RequireRegistrar requires the registrar role
func RequireRegistrar(next http.Handler) http.Handler {
	return requireRole(profile.RoleRegistrar)(next)
}

// RequireHOD requires the hod role
func RequireHOD(next http.Handler) http.Handler {
	return requireRole(profile.RoleHOD)(next)
}

// RequireFaculty requires the faculty role
func RequireFaculty(next http.Handler) http.Handler {
	return requireRole(profile.RoleFaculty)(next)
}

// RequireStaff allows hod and registrar
func RequireStaff(next http.Handler) http.Handler {
	return requireRole(profile.RoleHOD, profile.RoleRegistrar)(next)
}
