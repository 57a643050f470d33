package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse writes body with status 200.
func SuccessResponse(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// ErrorResponse writes {"detail": detail} with the given status.
func ErrorResponse(c *gin.Context, code int, detail string) {
	c.JSON(code, NewError(code, detail))
}

// AbortWithError writes err as the response and stops the handler chain.
// A *Error keeps its own status and detail; anything else becomes a 500.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = ErrInternal()
	}
	c.AbortWithStatusJSON(apiErr.Code, apiErr)
}
