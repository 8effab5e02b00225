package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"community_site/internal/feed"
	"community_site/internal/forms"
)

const (
	// RequestIDKey is the gin context key holding the request id.
	RequestIDKey = "request_id"

	InternalError    = "internal server error"
	ValidationFailed = "validation failed"
)

// UseJSONFieldNames makes gin's binding validator report fields by their
// json names.
func UseJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(forms.JSONTagName)
	}
}

// bindJSON decodes and validates the body into dst. It writes the 400
// response itself and reports false when the body is unusable.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	fields := forms.FromValidation(err)
	if fields == nil {
		fields = forms.FieldErrors{"body": "must be a valid JSON object"}
	}
	validationError(c, fields)
	return false
}

func validationError(c *gin.Context, fields forms.FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"error": ValidationFailed, "fields": fields})
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}

// internalError logs err with the request id and answers with a generic
// body.
func internalError(c *gin.Context, op string, err error) {
	slog.ErrorContext(c.Request.Context(), op,
		slog.String("error", err.Error()),
		slog.String("request_id", c.GetString(RequestIDKey)),
		slog.String("path", c.FullPath()),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": InternalError})
}

func pageParam(c *gin.Context) feed.Page {
	return feed.ParsePage(c.Query("page"), c.Query("limit"))
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// listing renders a page of results under key.
func listing[T any](c *gin.Context, key string, p feed.Page, res feed.Result[T]) {
	c.JSON(http.StatusOK, gin.H{
		key:        res.Items,
		"total":    res.Total,
		"has_more": res.HasMore,
		"page":     p.Number,
		"limit":    p.Size,
	})
}
