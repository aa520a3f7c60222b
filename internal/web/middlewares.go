package web

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

func tokenAuth(g *gin.Context, token string) bool {
	got := g.GetHeader("Authorization")
	want := "Bearer " + token
	return token != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func tokenAuthMiddleware(token string) gin.HandlerFunc {
	return func(g *gin.Context) {
		if !tokenAuth(g, token) {
			g.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		g.Next()
	}
}
