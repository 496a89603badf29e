package utils

import "github.com/gin-gonic/gin"

// JSONResponse is the uniform envelope every API endpoint returns. Errors
// always carry success=false plus a human-readable message; data is omitted
// on failure.
type JSONResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK writes a standard success response.
func OK(ctx *gin.Context, data interface{}) {
	ctx.JSON(200, JSONResponse{Success: true, Data: data})
}

// Fail writes a standard error response with the given HTTP status.
func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, JSONResponse{Success: false, Error: message})
}
