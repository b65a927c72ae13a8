package router

import (
	"community-server/internal/middleware"
	commenthandler "community-server/internal/modules/comment/handler"
	posthandler "community-server/internal/modules/post/handler"

	"github.com/gin-gonic/gin"
)

func registerPostRoutes(
	api *gin.RouterGroup,
	gate, optionalGate, writeLimiter gin.HandlerFunc,
	h *posthandler.Handler,
	ch *commenthandler.Handler,
) {
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	posts := api.Group("/posts")
	posts.GET("", h.ListPosts)
	posts.GET("/:id", optionalGate, h.GetPost)
	posts.POST("", gate, writeLimiter, h.CreatePost)
	posts.POST("/images", uploadBodyLimit, gate, writeLimiter, h.UploadImage)
	posts.PUT("/:id", gate, writeLimiter, h.UpdatePost)
	posts.DELETE("/:id", gate, h.DeletePost)

	posts.POST("/:id/likes", gate, writeLimiter, h.AddLike)
	posts.DELETE("/:id/likes", gate, writeLimiter, h.RemoveLike)
	posts.PUT("/:id/likes/toggle", gate, writeLimiter, h.ToggleLike)

	posts.GET("/:id/comments", ch.ListComments)
	posts.POST("/:id/comments", gate, writeLimiter, ch.CreateComment)

	comments := api.Group("/comments")
	comments.Use(gate)
	comments.PUT("/:id", writeLimiter, ch.UpdateComment)
	comments.DELETE("/:id", ch.DeleteComment)
}
