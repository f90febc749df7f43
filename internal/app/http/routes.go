package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/marmos91/imagevault/internal/api/images"
	"github.com/marmos91/imagevault/pkg/imageservice"
)

// RegisterRoutes wires the image endpoints onto the router.
func RegisterRoutes(r *gin.Engine, svc *imageservice.Service) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := images.NewHandler(svc)

	r.POST("/images", h.Upload)
	r.GET("/images", h.List)
	r.GET("/images/:image_id", h.Get)
	r.DELETE("/images/:image_id", h.Delete)
}
