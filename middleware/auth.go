package middleware

import (
	"net/http"

	"aircnc/models"
	"aircnc/services/auth"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware verifies the bearer token and stores the decoded claims in the context.
func JWTAuthMiddleware(authService auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authService.Verify(c.GetHeader("Authorization"))
		if err != nil {
			utils.RequestLogger(c).Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Error: true, Message: utils.MsgUnauthorized})
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Set(utils.EmailKey, claims.Email)
		c.Next()
	}
}

// EmailOwnerMiddleware requires the path parameter to equal the token's email claim.
// It must run after JWTAuthMiddleware.
func EmailOwnerMiddleware(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if err := auth.Authorize(claims, c.Param(param)); err != nil {
			decoded := ""
			if claims != nil {
				decoded = claims.Email
			}
			utils.RequestLogger(c).Warn("resource email mismatch",
				zap.String("decodedEmail", decoded),
				zap.String("requestedEmail", c.Param(param)))
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Error: true, Message: utils.MsgForbidden})
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by JWTAuthMiddleware, or nil.
func ClaimsFrom(c *gin.Context) *models.Claims {
	v, ok := c.Get(utils.ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*models.Claims)
	return claims
}
