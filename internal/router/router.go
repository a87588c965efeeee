package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/handler"
	"github.com/tbcare/screening-api/internal/middleware"
	"github.com/tbcare/screening-api/internal/service"
	"github.com/tbcare/screening-api/pkg/config"
	"github.com/tbcare/screening-api/pkg/logger"
	corsmiddleware "github.com/tbcare/screening-api/pkg/middleware/cors"
	reqidmiddleware "github.com/tbcare/screening-api/pkg/middleware/requestid"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Users   *handler.UserHandler
	Regions *handler.RegionHandler
	Records *handler.RecordHandler
	Exports *handler.ExportHandler
	Health  *handler.HealthHandler
}

// Options carries the cross-cutting collaborators of the router.
type Options struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *service.MetricsService
	Sessions *service.SessionService
}

// New builds the gin engine with every route of the API.
func New(h Handlers, opts Options) *gin.Engine {
	if opts.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", h.Health.Prometheus)
	if opts.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/signup", h.Users.Signup)
	r.POST("/login", h.Users.Login)
	// Download tokens are capabilities of their own and need no session.
	r.GET("/exports/:token", h.Exports.Download)

	api := r.Group("/", middleware.Session(opts.Sessions, opts.Logger))
	api.GET("/users", h.Users.List)
	api.POST("/regions", h.Regions.CreateRegion)
	api.POST("/regions/:region_id/sites", h.Regions.CreateSite)

	user := api.Group("/users/:user_id", middleware.SameUser("user_id", opts.Logger))
	user.PUT("", h.Users.Update)
	user.PUT("/sites/:site_id/regions/:region_id", h.Users.AssignRole)
	user.GET("/regions/:region_id/sites/:site_id/exports/:format", h.Exports.Export)

	user.POST("/records", h.Records.CreateRecord)
	user.GET("/records", h.Records.FindRecords)
	user.POST("/records/:record_id/specimen_collections", h.Records.CreateSpecimenCollection)
	user.GET("/records/:record_id/specimen_collections", h.Records.FindSpecimenCollections)

	record := user.Group("/sites/:site_id/regions/:region_id/records/:record_id")
	record.POST("/labs", h.Records.CreateLab)
	record.GET("/labs", h.Records.FindLabs)
	record.POST("/follow_ups", h.Records.CreateFollowUp)
	record.GET("/follow_ups", h.Records.FindFollowUps)
	record.POST("/outcome_recorded", h.Records.CreateOutcomeRecorded)
	record.GET("/outcome_recorded", h.Records.FindOutcomeRecorded)
	record.POST("/tb_treatment_outcomes", h.Records.CreateTBTreatmentOutcome)
	record.GET("/tb_treatment_outcomes", h.Records.FindTBTreatmentOutcomes)

	return r
}
