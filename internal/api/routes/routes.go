package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klarsen/folio/internal/api/handlers"
)

type Deps struct {
	Portfolio *handlers.PortfolioHandler
	Contact   *handlers.ContactHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/profile", d.Portfolio.Profile)
	api.GET("/skills", d.Portfolio.Skills)
	api.GET("/projects", d.Portfolio.Projects)
	api.GET("/experience", d.Portfolio.Experience)

	api.POST("/contact", d.Contact.Submit)
}
