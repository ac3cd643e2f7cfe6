package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/azadgupta1010/GD-2.0/config"
	"github.com/azadgupta1010/GD-2.0/controllers"
	"github.com/azadgupta1010/GD-2.0/middlewares"
	"github.com/azadgupta1010/GD-2.0/routes"
	"github.com/azadgupta1010/GD-2.0/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg.Log)

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt secret is empty, set GODAM_JWT_SECRET")
	}

	db, err := config.ConnectDB(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}
	if err := config.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate")
	}
	if created, err := config.SeedOwner(db, cfg.Bootstrap); err != nil {
		log.WithError(err).Fatal("seed owner")
	} else if created {
		log.WithField("username", cfg.Bootstrap.OwnerUsername).Info("owner account created")
	}

	svc := service.NewService(db, log)
	h := controllers.NewHandler(svc, log, []byte(cfg.JWT.Secret),
		time.Duration(cfg.JWT.ExpireHours)*time.Hour)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log))
	routes.SetupRoutes(r, h, []byte(cfg.JWT.Secret))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Godam API is running"})
	})

	port := cfg.Server.Port
	if p := os.Getenv("PORT"); p != "" {
		fmt.Sscanf(p, "%d", &port)
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, port)
	log.WithField("addr", addr).Info("listening")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
