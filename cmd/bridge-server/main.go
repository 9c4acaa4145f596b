package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"

	"com.hawanagroup.socialbridge/internal/boot"
	"com.hawanagroup.socialbridge/internal/handlers"
	"com.hawanagroup.socialbridge/internal/reply"
	"com.hawanagroup.socialbridge/internal/service/analytics"
	"com.hawanagroup.socialbridge/internal/service/auth"
	"com.hawanagroup.socialbridge/internal/service/conversion"
	"com.hawanagroup.socialbridge/internal/service/dispatch"
	"com.hawanagroup.socialbridge/internal/service/media"
	"com.hawanagroup.socialbridge/internal/service/messaging"
	"com.hawanagroup.socialbridge/internal/service/social"
	"com.hawanagroup.socialbridge/internal/store"
)

func main() {
	config, err := boot.Load()
	if err != nil {
		log.Fatalf("boot: %+v", err)
	}

	interactions, err := store.NewInteractionStore(config)
	if err != nil {
		log.Fatalf("creating interaction store: %+v", err)
	}
	defer interactions.Close()

	operators, err := store.NewOperatorStore(config)
	if err != nil {
		log.Fatalf("creating operator store: %+v", err)
	}
	defer operators.Close()

	authService, err := auth.New(config, operators)
	if err != nil {
		log.Fatalf("creating auth service: %+v", err)
	}

	sender := messaging.New(config)
	dispatcher := dispatch.New(sender, interactions, reply.NewBank())
	posts := social.New(config)
	mediaService := media.New(config)
	conversions := conversion.New(config)
	metrics := analytics.NewSampleProvider()

	server := echo.New()
	server.Use(middleware.BodyLimit("1M"))
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return cuid2.Generate()
		},
	}))
	server.Use(echoprometheus.NewMiddleware("socialbridge"))
	server.Use(middleware.Recover())

	server.Logger.SetLevel(log.INFO)

	headers := []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization}
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(config.Server.Origins, ","),
		AllowHeaders:     headers,
		AllowCredentials: true,
	}))

	server.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	server.GET("/webhooks/:provider", handlers.VerifyWebhook(config))
	server.POST("/webhooks/messaging", handlers.ReceiveMessaging(dispatcher))
	server.POST("/webhooks/:provider", handlers.ReceiveEvents(config))

	server.POST("/auth/login", handlers.Login(authService))

	api := server.Group("/api", handlers.RequireOperator(authService))
	api.POST("/messages", handlers.SendMessage(sender, interactions))
	api.POST("/posts", handlers.CreatePost(posts))
	api.POST("/media", handlers.PublishMedia(mediaService))
	api.POST("/conversions", handlers.TrackConversion(conversions))
	api.GET("/analytics/:sector", handlers.GetAnalytics(metrics))
	api.GET("/interactions/:sender", handlers.GetInteractions(interactions))

	go func() {
		metricsServer := echo.New()
		metricsServer.GET("/metrics", echoprometheus.NewHandler())
		if err := metricsServer.Start(":" + config.Server.MetricsPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	go func() {
		if err := server.Start(":" + config.Server.Port); err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		server.Logger.Fatal(err)
	}
}
