package middleware

import (
	"net/http"

	"benihealth/internal/domain/entity"
	"benihealth/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireEmployer is a convenience middleware for employer-only endpoints
func RequireEmployer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleEmployer)(next)
}

// RequireEmployee is a convenience middleware for employee-only endpoints
func RequireEmployee(next http.Handler) http.Handler {
	return RequireRole(entity.RoleEmployee)(next)
}

// RequireProvider is a convenience middleware for provider-only endpoints
func RequireProvider(next http.Handler) http.Handler {
	return RequireRole(entity.RoleProvider)(next)
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireAdminOrHMO is a convenience middleware for back-office endpoints
func RequireAdminOrHMO(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleHMO)(next)
}
