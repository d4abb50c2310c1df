package middleware

import (
	"net/http"

	"clinic-portal/internal/domain/entity"
	"clinic-portal/pkg/response"
)

// RequireRole creates a middleware that checks the session role against the allowed roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Session not found")
				return
			}

			if !session.HasRole(roles...) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

func RequireNurse(next http.Handler) http.Handler {
	return RequireRole(entity.RoleNurse)(next)
}

func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireAppointmentOwner admits the roles that own appointments
func RequireAppointmentOwner(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor, entity.RolePatient)(next)
}
