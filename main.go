package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"tonehunt-catalog/config"
	"tonehunt-catalog/handlers"
	"tonehunt-catalog/helper"
	"tonehunt-catalog/repositories"
	"tonehunt-catalog/services"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	// Initialize database
	db := config.InitDB()
	defer config.CloseDB(db)

	var countsCache services.CountsCache
	rdb, err := config.InitRedis(context.Background())
	if err != nil {
		log.WithError(err).Warn("redis unavailable, counts cache disabled")
	} else if rdb != nil {
		defer rdb.Close()
		countsCache = services.NewRedisCountsCache(rdb, config.CountsCacheTTL())
	}

	// Initialize repositories
	modelRepo := repositories.NewModelRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	countsRepo := repositories.NewCountsRepository(db)

	// Initialize services
	modelService := services.NewModelService(modelRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	tagService := services.NewTagService(tagRepo)
	countsService := services.NewCountsService(countsRepo, countsCache)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	router := handlers.Router{
		Model:   handlers.NewModelHandler(modelService, categoryService, httpHelper),
		Tag:     handlers.NewTagHandler(tagService, httpHelper),
		Catalog: handlers.NewCatalogHandler(countsService, categoryService, httpHelper),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	router.Setup(engine)

	srv := &http.Server{
		Addr:              ":" + config.Port(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	log.Info("server stopped")
}
