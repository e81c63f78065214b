package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/logger"
	"pgstay-backend/internal/repository"
	"pgstay-backend/internal/security"
)

type contextKey string

const (
	contextKeyClaims    contextKey = "claims"
	contextKeyTenant    contextKey = "tenant"
	contextKeyRequestID contextKey = "request_id"
)

func claimsFrom(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(contextKeyClaims).(*security.UserClaims)
	if !ok {
		return nil, fmt.Errorf("%w: missing caller identity", domain.ErrValidation)
	}
	return claims, nil
}

// tenantFrom returns the tenant resolved by the middleware. Every handler
// goes through it; an operation without a resolved tenant context cannot
// reach a repository.
func tenantFrom(ctx context.Context) (*domain.Tenant, error) {
	tenant, ok := ctx.Value(contextKeyTenant).(*domain.Tenant)
	if !ok {
		return nil, fmt.Errorf("%w: tenant context is missing", domain.ErrValidation)
	}
	return tenant, nil
}

// RequestIDMiddleware tags each request with a uuid and logs the
// method/path pair under it.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		logger.WithRequest(requestID).Debug("Incoming request", "method", r.Method, "path", r.URL.Path)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware validates the bearer token and stores the caller claims.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Missing or malformed Authorization header"})
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid or expired token"})
				return
			}
			ctx := context.WithValue(r.Context(), contextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantMiddleware resolves the tenant from X-Tenant-ID or X-Tenant-Slug
// and rejects requests without an active tenant.
func TenantMiddleware(tenantRepo repository.TenantRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idHeader := r.Header.Get("X-Tenant-Id")
			slugHeader := r.Header.Get("X-Tenant-Slug")
			if idHeader == "" && slugHeader == "" {
				writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Tenant header missing. Use X-Tenant-Id or X-Tenant-Slug."})
				return
			}

			var tenant *domain.Tenant
			var err error
			if idHeader != "" {
				id, convErr := strconv.ParseInt(idHeader, 10, 32)
				if convErr != nil {
					writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid tenant id"})
					return
				}
				tenant, err = tenantRepo.GetByID(r.Context(), int32(id))
			} else {
				tenant, err = tenantRepo.GetBySlug(r.Context(), slugHeader)
			}
			if err != nil {
				writeError(w, err)
				return
			}
			if tenant.Status != domain.TenantStatusActive {
				writeJSON(w, http.StatusForbidden, errorResponse{Message: "Tenant is not active"})
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyTenant, tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireStaff rejects callers whose token does not carry the staff role.
func RequireStaff(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFrom(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if claims.Role != domain.RoleStaff {
			writeJSON(w, http.StatusForbidden, errorResponse{Message: "Staff role required"})
			return
		}
		next(w, r)
	}
}
