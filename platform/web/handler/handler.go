package handler

import (
	"github.com/gin-gonic/gin"
)

// Result carries the status and body a handler wants written
type Result struct {
	Status int
	Body   any
}

// Error is the body returned for failed requests
type Error struct {
	Message string   `json:"message" example:"missing required fields"`
	Fields  []string `json:"fields,omitempty" example:"title"`
}

// Wrapper adapts a Result returning handler into a gin handler writing json
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		ctx.JSON(result.Status, result.Body)
	}
}
