package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tonehunt-catalog/metrics"
	"tonehunt-catalog/middleware"
)

type Router struct {
	Model   *ModelHandler
	Tag     *TagHandler
	Catalog *CatalogHandler
}

func (r Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.RequestID(), middleware.RequestLogger(), metrics.Handler())

	// CORS middleware
	engine.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.GET("/metrics", metrics.Exposer())

	v1 := engine.Group("/api/v1")
	v1.Use(middleware.OptionalAuth())
	{
		modelsGroup := v1.Group("/models")
		{
			modelsGroup.GET("", r.Model.GetModels)
			modelsGroup.GET("/trending", r.Model.GetTrendingModels)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", r.Tag.GetTags)
			tags.GET("/:id", r.Tag.GetTag)
		}

		v1.GET("/categories", r.Catalog.GetCategories)
		v1.GET("/counts", r.Catalog.GetCounts)
	}
}
