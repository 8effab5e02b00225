package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"community_site/internal/content"
	"community_site/internal/repository"
)

// ListPosts pages through published posts, optionally by tag slug.
func ListPosts(repo *repository.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParam(c)
		res, err := repo.Published(c.Request.Context(), strings.TrimSpace(c.Query("tag")), p)
		if err != nil {
			internalError(c, "list posts", err)
			return
		}
		listing(c, "posts", p, res)
	}
}

func GetPost(repo *repository.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := repo.BySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				notFound(c, "post")
				return
			}
			internalError(c, "get post", err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func ListTags(repo *repository.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := repo.Tags(c.Request.Context())
		if err != nil {
			internalError(c, "list tags", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tags": tags})
	}
}

// ListGallery pages through gallery items, optionally within one album.
func ListGallery(repo *repository.GalleryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParam(c)
		res, err := repo.List(c.Request.Context(), strings.TrimSpace(c.Query("album")), p)
		if err != nil {
			internalError(c, "list gallery", err)
			return
		}
		listing(c, "items", p, res)
	}
}

func ListAlbums(repo *repository.GalleryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		albums, err := repo.Albums(c.Request.Context())
		if err != nil {
			internalError(c, "list albums", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"albums": albums})
	}
}

func GetGalleryItem(repo *repository.GalleryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			notFound(c, "gallery item")
			return
		}
		item, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				notFound(c, "gallery item")
				return
			}
			internalError(c, "get gallery item", err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// ListFeed serves the member feed. The feed cookie only drives the client's
// gate; the listing itself is not restricted.
func ListFeed(repo *repository.FeedPostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParam(c)
		res, err := repo.List(c.Request.Context(), p)
		if err != nil {
			internalError(c, "list feed", err)
			return
		}
		listing(c, "posts", p, res)
	}
}

func GetPage(pages *content.Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := pages.Get(c.Param("slug"))
		if err != nil {
			notFound(c, "page")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
