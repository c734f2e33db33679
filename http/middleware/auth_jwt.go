package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/internal/constants"
	"github.com/benedict-erwin/agency-console/pkg/auth"
	"github.com/benedict-erwin/agency-console/pkg/logger"
	"github.com/benedict-erwin/agency-console/pkg/response"
)

type contextKey string

const (
	ClientIDKey    contextKey = "client_id"
	ClientNameKey  contextKey = "client_name"
	PermissionsKey contextKey = "permissions"
)

// JWTAuthMiddleware creates JWT authentication middleware with required permission
func JWTAuthMiddleware(requiredPermission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.WithScope("JWTAuthMiddleware")

			if !config.Get().Auth.Enabled {
				log.Debug().
					Str("path", c.Request().URL.Path).
					Msg("Auth disabled, skipping JWT authentication")
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn().
					Str("path", c.Request().URL.Path).
					Msg("Missing Authorization header")
				return response.FailWithCode(c, constants.CodeMissingAuth)
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				log.Warn().
					Str("path", c.Request().URL.Path).
					Msg("Invalid Authorization header format")
				return response.FailWithCode(c, constants.CodeInvalidToken)
			}

			claims, err := auth.VerifyJWT(strings.TrimSpace(tokenString))
			if err != nil {
				log.Warn().
					Err(err).
					Str("path", c.Request().URL.Path).
					Msg("JWT verification failed")
				if errors.Is(err, jwt.ErrTokenExpired) {
					return response.FailWithCode(c, constants.CodeExpiredToken)
				}
				return response.FailWithCode(c, constants.CodeInvalidToken)
			}

			clientConfig, exists := auth.GetClientInfo(claims.ClientID)
			if !exists {
				log.Error().
					Str("client_id", claims.ClientID).
					Msg("Client config not found after successful JWT verification")
				return response.FailWithCode(c, constants.CodeInvalidToken)
			}

			if requiredPermission != "" && !auth.HasPermission(clientConfig.Permissions, requiredPermission) {
				log.Warn().
					Str("client_id", claims.ClientID).
					Str("required_permission", requiredPermission).
					Strs("user_permissions", clientConfig.Permissions).
					Str("path", c.Request().URL.Path).
					Msg("Insufficient permissions")
				return response.FailWithCode(c, constants.CodeInsufficientPerms)
			}

			ctx := context.WithValue(c.Request().Context(), ClientIDKey, claims.ClientID)
			ctx = context.WithValue(ctx, ClientNameKey, clientConfig.ClientName)
			ctx = context.WithValue(ctx, PermissionsKey, clientConfig.Permissions)
			c.SetRequest(c.Request().WithContext(ctx))

			log.Debug().
				Str("client_id", claims.ClientID).
				Str("required_permission", requiredPermission).
				Str("path", c.Request().URL.Path).
				Msg("Authentication successful")

			return next(c)
		}
	}
}

// GetClientID extracts client ID from request context
func GetClientID(c echo.Context) string {
	if clientID, ok := c.Request().Context().Value(ClientIDKey).(string); ok {
		return clientID
	}
	return ""
}

// GetClientName extracts client name from request context
func GetClientName(c echo.Context) string {
	if clientName, ok := c.Request().Context().Value(ClientNameKey).(string); ok {
		return clientName
	}
	return ""
}
