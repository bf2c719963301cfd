package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/visamate/visa-helper-backend/client"
	"github.com/visamate/visa-helper-backend/config"
	"github.com/visamate/visa-helper-backend/database"
	"github.com/visamate/visa-helper-backend/handler"
	"github.com/visamate/visa-helper-backend/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	tripRepo := database.NewTripRepository(db)
	requiredDocsRepo := database.NewRequiredDocsRepository(db)
	visaRuleRepo := database.NewVisaRuleRepository(db)

	tesseractClient := client.NewTesseractClient(cfg.OCR.TessdataPrefix, cfg.OCR.Language)
	if !tesseractClient.Available() {
		logger.Warn("Tesseract engine not reachable; image uploads will be rejected")
	}

	documentService := service.NewDocumentService(
		tesseractClient,
		service.NewPDFProcessor(),
		service.NewQRDecoder(),
		tripRepo,
		logger,
	)

	uploadHandler := handler.NewUploadHandler(documentService, logger)
	checklistHandler := handler.NewChecklistHandler(requiredDocsRepo, logger)
	tripHandler := handler.NewTripHandler(tripRepo, logger)
	rulesHandler := handler.NewRulesHandler(visaRuleRepo, logger)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router.MaxMultipartMemory = cfg.Server.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Visa Helper Backend",
		})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/application/:id/checklist", checklistHandler.GetChecklist)
		api.POST("/upload/:id", uploadHandler.UploadAndExtract)

		api.GET("/trips", tripHandler.ListTrips)
		api.POST("/trips", tripHandler.CreateTrip)
		api.GET("/trips/:id", tripHandler.GetTrip)

		api.GET("/rules", rulesHandler.ListRules)
	}

	logger.Infof("Starting Visa Helper Backend on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// requestLogger logs one structured line per request.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}

		if c.Writer.Status() >= 500 {
			logger.WithFields(fields).Error("request failed")
		} else {
			logger.WithFields(fields).Info("request handled")
		}
	}
}
