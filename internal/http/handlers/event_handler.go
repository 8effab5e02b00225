package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"community_site/internal/forms"
	"community_site/internal/registration"
	"community_site/internal/repository"
)

// ListEvents pages through upcoming events, soonest first.
func ListEvents(repo *repository.EventRepository, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParam(c)
		res, err := repo.Upcoming(c.Request.Context(), now(), p)
		if err != nil {
			internalError(c, "list events", err)
			return
		}
		listing(c, "events", p, res)
	}
}

func GetEvent(repo *repository.EventRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev, err := repo.BySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				notFound(c, "event")
				return
			}
			internalError(c, "get event", err)
			return
		}
		c.JSON(http.StatusOK, ev)
	}
}

// RegisterForEvent records a participation with its guests.
func RegisterForEvent(svc *registration.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registration.Request
		if !bindJSON(c, &req) {
			return
		}

		p, err := svc.Register(c.Request.Context(), req)
		switch {
		case errors.Is(err, registration.ErrEventNotFound):
			validationError(c, forms.FieldErrors{"eventId": "does not match an event"})
			return
		case errors.Is(err, registration.ErrRegistrationClosed):
			validationError(c, forms.FieldErrors{"eventId": "registration is closed for this event"})
			return
		case err != nil:
			internalError(c, "register for event", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id": p.ID,
			"counts": registration.Counts{
				People:  p.People,
				Adults:  p.Adults,
				Teens:   p.Teens,
				Kids:    p.Kids,
				Males:   p.Males,
				Females: p.Females,
			},
		})
	}
}
