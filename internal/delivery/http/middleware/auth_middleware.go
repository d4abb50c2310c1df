package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/service"
	"clinic-portal/pkg/jwt"
	"clinic-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const SessionKey contextKey = "session"

type AuthMiddleware struct {
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
	log          *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionStore service.SessionStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtService,
		sessionStore: sessionStore,
		log:          log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		session, err := m.sessionStore.Get(r.Context(), claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to load session %s: %+v", claims.TokenID, err)
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if session == nil {
			response.Unauthorized(w, "Session has ended, please sign in again")
			return
		}
		if session.Identity.UserID != claims.UserID || session.Identity.Role != claims.Role {
			response.Unauthorized(w, "Session does not match token")
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext extracts the session set by Authenticate
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok && session != nil
}
