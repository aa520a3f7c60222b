package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HttpErr struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"msg"`
}

func (e HttpErr) Error() string {
	return e.Message
}

func NewHttpError(err error, statusCode int) HttpErr {
	return HttpErr{
		StatusCode: statusCode,
		Message:    err.Error(),
	}
}

// errorMiddleware renders the last error a handler attached to the context.
func errorMiddleware() gin.HandlerFunc {
	return func(g *gin.Context) {
		g.Next()
		last := g.Errors.Last()
		if last == nil || g.Writer.Written() {
			return
		}
		var he HttpErr
		if errors.As(last.Err, &he) {
			g.JSON(he.StatusCode, he)
			return
		}
		g.JSON(http.StatusInternalServerError, NewHttpError(last.Err, http.StatusInternalServerError))
	}
}
