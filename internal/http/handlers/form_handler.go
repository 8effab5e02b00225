package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"community_site/internal/forms"
)

const maxStepBody = 64 << 10

// AdvanceForm validates one wizard step and tells the client which step
// comes next.
func AdvanceForm(registry forms.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := registry.Get(c.Param("form"))
		if err != nil {
			notFound(c, "form")
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxStepBody))
		if err != nil {
			validationError(c, forms.FieldErrors{"body": "could not be read"})
			return
		}

		next, err := w.Advance(c.Param("step"), body)
		if err != nil {
			var fields forms.FieldErrors
			switch {
			case errors.As(err, &fields):
				validationError(c, fields)
			case errors.Is(err, forms.ErrUnknownStep):
				notFound(c, "step")
			default:
				internalError(c, "advance form", err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"next": next, "complete": next == ""})
	}
}
