// Package router builds the Gin engines for both services.
package router

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "portal_backend/internal/feature/auth/transport/handler"
	bloghandler "portal_backend/internal/feature/blog/transport/handler"
	"portal_backend/internal/platform/http/handler"
)

// NewAuthRouter wires the authentication service routes.
// Registration and login are public; resources require a valid session
// cookie.
func NewAuthRouter(allowedOrigins string, auth *authhandler.AuthHandler,
	resources *authhandler.ResourceHandler, session gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(allowedOrigins))

	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", auth.Register)
	authGroup.POST("/login", auth.Login)

	protected := api.Group("/resources")
	protected.Use(session)
	{
		protected.GET("", resources.List)
		protected.POST("", resources.Create)
	}

	return r
}

// NewBlogRouter wires the content-management service routes.
func NewBlogRouter(allowedOrigins string, categories *bloghandler.CategoryHandler,
	posts *bloghandler.PostHandler, tags *bloghandler.TagHandler) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(allowedOrigins))

	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	api := r.Group("/api")

	cat := api.Group("/categories")
	{
		cat.GET("", categories.List)
		cat.GET("/:id", categories.Get)
		cat.POST("", categories.Create)
		cat.PUT("/:id", categories.Update)
		cat.DELETE("/:id", categories.Delete)
	}

	post := api.Group("/posts")
	{
		post.GET("", posts.List)
		post.GET("/:id", posts.Get)
		post.POST("", posts.Create)
		post.PUT("/:id", posts.Update)
		post.DELETE("/:id", posts.Delete)
	}

	tag := api.Group("/tags")
	{
		tag.GET("", tags.List)
		tag.GET("/:id", tags.Get)
		tag.POST("", tags.Create)
		tag.PUT("/:id", tags.Update)
		tag.DELETE("/:id", tags.Delete)
	}

	return r
}

// corsMiddleware allows the configured origins with credentials, since the
// session travels in a cookie. An empty configuration keeps the permissive
// default for local development.
func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	if allowedOrigins == "" {
		return cors.Default()
	}
	cfg := cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}
	return cors.New(cfg)
}
