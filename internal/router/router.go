package router

import (
	"net/http"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handler"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Setup configures the Gin engine, middleware and all API routes.
func Setup(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := store.NewUsers(db)
	transactions := store.NewTransactions(db)
	goals := store.NewGoals(db)
	logs := store.NewLogs(db)

	defaultLimit := cfg.App.DefaultPageSize
	maxLimit := cfg.App.MaxPageSize

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(users, cfg.JWT.Secret, cfg.JWT.Issuer,
		cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.Auth(cfg.JWT.Secret, cfg.JWT.Issuer, users),
		middleware.Audit(logs, log),
	)

	protected.GET("/auth/me", authHandler.Me)

	profileHandler := handler.NewProfileHandler(users, cfg.Security.BcryptCost)
	protected.PUT("/profile", profileHandler.Update)
	protected.PUT("/profile/password", profileHandler.ChangePassword)

	txHandler := handler.NewTransactionHandler(transactions, defaultLimit, maxLimit, log)
	protected.GET("/transactions", txHandler.List)
	protected.POST("/transactions", txHandler.Create)
	protected.GET("/transactions/stats", txHandler.Stats)
	protected.GET("/transactions/:id", txHandler.Get)
	protected.PUT("/transactions/:id", txHandler.Update)
	protected.DELETE("/transactions/:id", txHandler.Delete)

	exportHandler := handler.NewExportHandler(transactions, log)
	protected.GET("/transactions/export/csv", exportHandler.CSV)
	protected.GET("/transactions/export/xlsx", exportHandler.XLSX)

	goalHandler := handler.NewGoalHandler(goals, defaultLimit, maxLimit, log)
	protected.GET("/goals", goalHandler.List)
	protected.POST("/goals", goalHandler.Create)
	protected.GET("/goals/stats", goalHandler.Stats)
	protected.GET("/goals/:id", goalHandler.Get)
	protected.PUT("/goals/:id", goalHandler.Update)
	protected.DELETE("/goals/:id", goalHandler.Delete)

	logHandler := handler.NewLogHandler(logs, defaultLimit, maxLimit, log)
	protected.GET("/logs", logHandler.List)

	return r
}
