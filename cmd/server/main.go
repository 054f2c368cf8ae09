package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Berley24/chamadaaaa/internal/config"
	"github.com/Berley24/chamadaaaa/internal/handlers"
	"github.com/Berley24/chamadaaaa/internal/marker"
	"github.com/Berley24/chamadaaaa/internal/middleware"
	"github.com/Berley24/chamadaaaa/internal/services"
	"github.com/Berley24/chamadaaaa/internal/store"
	"github.com/Berley24/chamadaaaa/internal/ws"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}
	cfg := config.Load()

	sessionStore := store.New()
	hub := ws.NewHub()
	issuer := marker.NewIssuer(cfg.MarkerSecret)

	joinService := services.NewJoinService(sessionStore, hub,
		cfg.GeofenceRadiusM, cfg.RequireFreshDevice, cfg.UniqueOriginAddress)

	sessionHandler := handlers.NewSessionHandler(sessionStore, cfg.PublicBaseURL)
	joinHandler := handlers.NewJoinHandler(joinService, issuer)
	exportHandler := handlers.NewExportHandler(sessionStore, cfg.PublicBaseURL, cfg.PurgeOnExport)
	wsHandler := handlers.NewWSHandler(hub, sessionStore)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		// Cookies carry the device marker, so credentials stay on and
		// origins are echoed instead of wildcarded.
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/ws/sessions/:id", wsHandler.Subscribe)

	sessions := r.Group("/sessions")
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.GET("/:id/qr", exportHandler.QRCode)
		sessions.PATCH("/:id/location", sessionHandler.UpdateLocation)
		sessions.POST("/:id/join", middleware.DeviceMarker(issuer), joinHandler.JoinSession)
		sessions.POST("/:id/close", sessionHandler.CloseSession)
		sessions.GET("/:id/export.xlsx", exportHandler.ExportXlsx)
		sessions.GET("/:id/export.docx", exportHandler.ExportDocx)
		sessions.POST("/:id/purge", sessionHandler.PurgeSession)
	}

	log.Printf("server starting on :%s (geofence %.0fm)", cfg.ServerPort, cfg.GeofenceRadiusM)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
