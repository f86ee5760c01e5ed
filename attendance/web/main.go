package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"axiapac.com/lms/attendance/app"
	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/messages"
	common "axiapac.com/lms/attendance/web/common"
	"axiapac.com/lms/attendance/web/handlers/studentattendance"
	"axiapac.com/lms/config"
	"axiapac.com/lms/core"
	"axiapac.com/lms/infrastructure/devops"
	"axiapac.com/lms/security"
	"axiapac.com/lms/web/middlewares"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	dsn, err := devops.ResolveDSN(context.Background(), cfg.DSN, cfg.DBEntry, "")
	if err != nil {
		log.Fatal(err)
	}
	dm, err := core.New(dsn, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()
	dm.LogLevel = core.ParseLogLevel(cfg.LogLevel)
	if cfg.Database != "" {
		dm.DefaultSchema = cfg.Database
	}
	fmt.Printf("[INFO] default schema: %s\n", dm.DefaultSchema)

	jwtSecret, err := security.DecodeSecret(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	resolver, err := messages.Load(cfg.MessagesFile)
	if err != nil {
		log.Fatal(err)
	}
	hours, err := app.WorkHours(cfg)
	if err != nil {
		log.Fatal(err)
	}

	base := &common.Handler{
		Dm:       dm,
		Messages: resolver,
		Clock:    attendance.SystemClock{Location: app.Location(cfg)},
		Hours:    hours,
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/lms/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		protected.GET("/whoami", func(c *gin.Context) {
			session, _ := common.Session(c)
			c.JSON(http.StatusOK, gin.H{"data": session})
		})
		studentattendance.Register(protected, base)
	}

	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
