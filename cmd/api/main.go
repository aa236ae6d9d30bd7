package main

import (
	"log"
	"net/http"

	"github.com/dentsync/clinic-api/internal/cache"
	"github.com/dentsync/clinic-api/internal/config"
	dbpkg "github.com/dentsync/clinic-api/internal/db"
	"github.com/dentsync/clinic-api/internal/middleware"
	"github.com/dentsync/clinic-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisCache := cache.New(cfg.RedisAddr)
	if redisCache == nil {
		log.Println("redis unavailable, treatment cache disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisCache, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
