package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-talent-backend/config"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Supabase access token and resolves the
// caller's profile. The role always comes from the database, not from
// the token, so role changes take effect on the next request.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, profileUC domain.ProfileUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				// HS256 uses the project JWT secret
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}
			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})
		if err != nil || !token.Valid {
			logger.Log.Debug("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		profile, err := profileUC.GetByUserID(c.Request.Context(), sub)
		if err != nil || profile == nil {
			response.Error(c, http.StatusUnauthorized, "Profile not found", nil)
			c.Abort()
			return
		}

		role := profile.Role
		if role == "" {
			role = domain.RoleUser
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyProfileID), profile.ID)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		// Usecases read identity through the request context
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
		ctx = context.WithValue(ctx, domain.KeyProfileID, profile.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
