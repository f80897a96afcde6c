package middlewares

import (
	"net/http"
	"strings"

	"assignment-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RoleBasedAccessControl 指定されたロールのみアクセスを許可するミドルウェア
// AuthMiddlewareの後に使用することを想定（ctxに"user"が設定されている必要がある）
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// トークンのクレームではなくデータベースから取得した最新のロールで判定する
		hasAccess := false
		userRole := strings.TrimSpace(strings.ToLower(userModel.Role))
		for _, allowedRole := range allowedRoles {
			if userRole == strings.TrimSpace(strings.ToLower(allowedRole)) {
				hasAccess = true
				break
			}
		}

		if !hasAccess {
			log.Warn().
				Uint("user_id", userModel.ID).
				Str("role", userModel.Role).
				Strs("allowed_roles", allowedRoles).
				Msg("access denied")
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}
