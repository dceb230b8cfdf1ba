package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"finance_api/domain"
	"finance_api/internal/service/logger"

	"go.uber.org/zap"
)

// AuthMiddleware guards protected routes in the authenticated variant. The
// token is checked before any business logic runs; missing, invalid and
// expired tokens each carry their own diagnostic code, all as 401.
func AuthMiddleware(jwtToken JwtTokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, requestID, &domain.AuthError{Code: domain.AuthCodeTokenMissing, Message: "missing authorization token"})
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, requestID, &domain.AuthError{Code: domain.AuthCodeTokenInvalid, Message: "invalid authorization header"})
				return
			}

			claims, err := jwtToken.Validate(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				var authErr *domain.AuthError
				if !errors.As(err, &authErr) {
					authErr = &domain.AuthError{Code: domain.AuthCodeTokenInvalid, Message: "invalid token"}
				}
				writeAuthError(w, requestID, authErr)
				return
			}

			userID, err := claims.SubjectID()
			if err != nil {
				writeAuthError(w, requestID, &domain.AuthError{Code: domain.AuthCodeTokenInvalid, Message: "invalid token subject"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAuthUserID(r.Context(), userID)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, requestID string, authErr *domain.AuthError) {
	logger.AccessLogger.Warn("Rejected unauthorized request",
		zap.String("request_id", requestID),
		zap.String("code", authErr.Code),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": authErr.Code, "details": authErr.Message}); err != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}
