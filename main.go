package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/books"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/loans"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/notifications"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/plans"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/refdata"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/seed"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/users"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/auth"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/db"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/httpx"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/mailer"
)

func main() {
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)

	if cfg.Mode != "dev" && cfg.Mode != "release" {
		fmt.Println("Usage: go run main.go [dev|release]")
		return
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		panic(err)
	}

	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	if err := conn.AutoMigrate(
		&model.Role{}, &model.Gender{}, &model.BookStatus{}, &model.BookCollection{},
		&model.Editorial{}, &model.Author{}, &model.LoanStatus{}, &model.Plan{},
		&model.PlanStatus{}, &model.FeeType{}, &model.User{}, &model.Book{},
		&model.Loan{}, &model.ActivePlan{}, &model.Notification{},
	); err != nil {
		panic(err)
	}

	httpx.RegisterValidators()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if mode == "dev" {
		// CORS is only needed while the frontend runs on its own port.
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	userSvc := users.NewService(conn)
	refSvcs := refdata.NewServices(conn)
	mail := mailer.New(cfg.SMTP)
	authSvc := auth.NewService(cfg, userSvc, mail)
	mw := auth.NewMiddleware([]byte(cfg.JWTSecret), conn)
	perm := func(name string) gin.HandlerFunc { return mw.RequirePermission(name) }

	api := r.Group("/api/v1")
	auth.RegisterRoutes(api, authSvc, userSvc)
	api.Use(mw.RequireAuth())
	users.RegisterRoutes(api, userSvc, perm)
	refdata.RegisterAll(api, refSvcs, perm)
	books.RegisterRoutes(api, books.NewService(conn), perm)
	loans.RegisterRoutes(api, loans.NewService(conn), perm)
	plans.RegisterRoutes(api, plans.NewService(conn), perm)
	notifications.RegisterRoutes(api, notifications.NewService(conn), perm)
	seed.RegisterRoutes(api, seed.NewImporter(cfg, refSvcs, conn), perm)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		var err error
		if cfg.Certificate.Cert != "" && cfg.Certificate.Key != "" {
			certFile := fmt.Sprintf("config/tls/%s/%s", mode, cfg.Certificate.Cert)
			keyFile := fmt.Sprintf("config/tls/%s/%s", mode, cfg.Certificate.Key)
			log.Printf("[INFO] listening on https://%s", cfg.Addr)
			err = srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			log.Printf("[INFO] listening on http://%s", cfg.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
