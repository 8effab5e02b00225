package httpserver

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"community_site/internal/auth"
	"community_site/internal/config"
	"community_site/internal/content"
	"community_site/internal/forms"
	"community_site/internal/http/handlers"
	"community_site/internal/membership"
	"community_site/internal/ratelimit"
	"community_site/internal/registration"
	"community_site/internal/repository"
)

// Deps is everything the router wires handlers from.
type Deps struct {
	DB     *gorm.DB
	Config config.Config
	// Limits backs every rate-limited route; each route uses its own scope.
	Limits ratelimit.Store
	Pages  *content.Pages
	Now    func() time.Time
}

func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Now == nil {
		d.Now = time.Now
	}
	handlers.UseJSONFieldNames()

	r := gin.New()
	if err := r.SetTrustedProxies(d.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(RequestID(), Logger(), Recovery())

	memberships := repository.NewMembershipRepository(d.DB)
	events := repository.NewEventRepository(d.DB)
	participations := repository.NewParticipationRepository(d.DB)
	posts := repository.NewPostRepository(d.DB)
	gallery := repository.NewGalleryRepository(d.DB)
	feedPosts := repository.NewFeedPostRepository(d.DB)
	admins := repository.NewAdminRepository(d.DB)
	audit := repository.NewAuditRepository(d.DB)

	rl := d.Config.RateLimit
	limited := func(scope string) gin.HandlerFunc {
		return ratelimit.Middleware(ratelimit.New(d.Limits, scope, rl.Max, rl.Window), ratelimit.ClientIPKey(""))
	}

	cookie := handlers.FeedCookie{
		Name:   d.Config.FeedCookieName,
		TTL:    d.Config.FeedCookieTTL,
		Secret: d.Config.JWTSecret,
		Secure: d.Config.SecureCookies,
	}

	r.GET("/healthz", handlers.Healthz(d.DB))

	api := r.Group("/api")
	{
		api.POST("/membership/verify", limited("membership-verify"),
			handlers.VerifyMembership(membership.NewVerifier(memberships), cookie))
		api.POST("/membership/apply", limited("membership-apply"), handlers.ApplyMembership(memberships))

		api.GET("/events", handlers.ListEvents(events, d.Now))
		api.GET("/events/:slug", handlers.GetEvent(events))
		api.POST("/events/register", limited("event-register"),
			handlers.RegisterForEvent(registration.NewService(participations)))

		api.GET("/posts", handlers.ListPosts(posts))
		api.GET("/posts/:slug", handlers.GetPost(posts))
		api.GET("/tags", handlers.ListTags(posts))

		api.GET("/gallery", handlers.ListGallery(gallery))
		api.GET("/gallery/albums", handlers.ListAlbums(gallery))
		api.GET("/gallery/:id", handlers.GetGalleryItem(gallery))

		api.GET("/feed", handlers.ListFeed(feedPosts))
		api.GET("/feed/access", handlers.FeedAccess(cookie))

		if d.Pages != nil {
			api.GET("/pages/:slug", handlers.GetPage(d.Pages))
		}

		api.POST("/forms/:form/steps/:step", handlers.AdvanceForm(forms.Default(forms.NewValidator())))

		api.POST("/admin/login", limited("admin-login"),
			handlers.AdminLogin(admins, audit, d.Config.JWTSecret, d.Config.SecureCookies))
		api.POST("/admin/logout", handlers.AdminLogout(d.Config.SecureCookies))
	}

	admin := api.Group("/admin", auth.JWT(admins, d.Config.JWTSecret))
	{
		admin.GET("/me", handlers.AdminMe(admins))
		admin.GET("/memberships", handlers.ListMemberships(memberships))
		admin.PATCH("/memberships/:id", handlers.UpdateMembershipStatus(memberships, audit))
		admin.GET("/events/:id/participations", handlers.ListParticipations(participations))
		admin.GET("/audit", handlers.ListAudit(audit))
	}

	return r, nil
}
