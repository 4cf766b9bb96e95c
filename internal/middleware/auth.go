package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/service"
)

const identityKey = "identity"

// Identity is the caller resolved once per request: a guest, a normal user, or
// an admin. Handlers read it instead of re-deriving roles ad hoc.
type Identity struct {
	UserID uint
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// CurrentIdentity returns the caller's identity. ok is false for guests.
func CurrentIdentity(ctx *gin.Context) (Identity, bool) {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := resolveIdentity(ctx, authService)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or missing token"})
			return
		}
		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

// RequireAdmin rejects everyone but admins.
func RequireAdmin(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := resolveIdentity(ctx, authService)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or missing token"})
			return
		}
		if !identity.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

// OptionalAuth resolves the identity when a token is present but lets guests
// through. Read endpoints use it to decide between admin and public shapes.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if identity, ok := resolveIdentity(ctx, authService); ok {
			ctx.Set(identityKey, identity)
		}
		ctx.Next()
	}
}

func resolveIdentity(ctx *gin.Context, authService service.AuthService) (Identity, bool) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return Identity{}, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Identity{}, false
	}
	userID, role, err := authService.ValidateToken(parts[1])
	if err != nil {
		return Identity{}, false
	}
	return Identity{UserID: userID, Role: role}, true
}
