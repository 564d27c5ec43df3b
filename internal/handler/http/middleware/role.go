package middleware

import (
	"net/http"

	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
)

// RoleHeader carries the caller's role, asserted by the authenticating proxy
// in front of this service. Role scoping is an explicit capability check at
// the boundary; the accrual core itself has no role logic.
const RoleHeader = "X-Actor-Role"

// RequireRole rejects requests whose asserted role is not in allowed.
func RequireRole(allowed ...worker.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := worker.Role(r.Header.Get(RoleHeader))
			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, "Insufficient role for this operation")
		})
	}
}
