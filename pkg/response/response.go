package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"visibility-srv/pkg/discord"
	pkgErrors "visibility-srv/pkg/errors"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as JSON. HTTPError and ValidationError keep their status,
// anything else becomes a 500 and is reported to d when d is not nil.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var valErr *pkgErrors.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(valErr.StatusCode(), Resp{
			ErrorCode: valErr.StatusCode(),
			Message:   MessageValidation,
			Errors:    valErr.Fields,
		})
		return
	}

	if d != nil {
		_ = d.ReportBug(context.Background(), fmt.Sprintf("%s %s: %v", c.Request.Method, c.FullPath(), err))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   MessageForbidden,
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		_ = d.ReportBug(context.Background(), fmt.Sprintf("panic on %s %s: %v", c.Request.Method, c.FullPath(), recovered))
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}
