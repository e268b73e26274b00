package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petshopco/petshop-backend/internal/config"
	dbpkg "github.com/petshopco/petshop-backend/internal/db"
	"github.com/petshopco/petshop-backend/internal/logger"
	"github.com/petshopco/petshop-backend/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.Init()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return origin != "" },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
