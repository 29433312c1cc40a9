package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/sm8ta/webike_fleet_dashboard/docs"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/storage"
	"github.com/sm8ta/webike_fleet_dashboard/internal/config"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
	server *http.Server
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	sessions SessionAuthorizer,
	authHandler *AuthHandler,
	sessionHandler *SessionHandler,
	inventoryHandler *InventoryHandler,
	maintenanceHandler *MaintenanceHandler,
	exportHandler *ExportHandler,
	mastersHandler *MastersHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", DeviceIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", DeviceIDHeader},
		AllowCredentials: true,
	}))

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Локальные вложения
	if cfg.UploadDir != "" {
		router.Static(storage.URLPrefix, cfg.UploadDir)
	}

	auth := AuthMiddleware(tokenService, sessions)
	canAdd := RequireCapability(domain.CapabilityAdd)
	canEdit := RequireCapability(domain.CapabilityEdit)
	canDelete := RequireCapability(domain.CapabilityDelete)
	canExport := RequireCapability(domain.CapabilityExport)

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.GET("/remembered", authHandler.Remembered)
		authGroup.POST("/logout", auth, authHandler.Logout)
		authGroup.GET("/me", auth, authHandler.Me)
	}

	// Idle session routes
	session := router.Group("/session")
	{
		session.GET("/idle", sessionHandler.Idle)
		session.POST("/activity", sessionHandler.Activity)
		session.POST("/extend", sessionHandler.Extend)
		session.POST("/logout-now", sessionHandler.LogoutNow)
	}

	// Inventory routes
	inventory := router.Group("/inventory")
	inventory.Use(auth)
	{
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/options", inventoryHandler.Options)
		inventory.GET("/stats", inventoryHandler.Stats)
		inventory.GET("/view", inventoryHandler.View)
		inventory.PUT("/view/filter", inventoryHandler.SetFilter)
		inventory.POST("/view/sort/:column", inventoryHandler.ToggleSort)
		inventory.POST("/view/next", inventoryHandler.NextPage)
		inventory.POST("/view/prev", inventoryHandler.PrevPage)
		inventory.GET("/export", canExport, inventoryHandler.Export)
		inventory.POST("/import", canAdd, inventoryHandler.Import)
		inventory.POST("/reconcile", canAdd, inventoryHandler.Reconcile)
		inventory.PATCH("/:chassis/status", canEdit, inventoryHandler.UpdateStatus)
	}

	// Maintenance routes
	maintenance := router.Group("/maintenance")
	maintenance.Use(auth)
	{
		maintenance.GET("/form", maintenanceHandler.NewForm)
		maintenance.POST("/form/derive", maintenanceHandler.Derive)
		maintenance.POST("/form/validate", maintenanceHandler.Validate)
		maintenance.GET("/form/contact", maintenanceHandler.CheckContact)
		maintenance.POST("/form/parts", maintenanceHandler.AddPartRow)
		maintenance.POST("/form/parts/:index/remove", maintenanceHandler.RemovePartRow)
		maintenance.GET("/cities", maintenanceHandler.Cities)
		maintenance.GET("/cities/:city/managers", maintenanceHandler.Managers)
		maintenance.GET("/cities/:city/bikes", maintenanceHandler.CityBikes)
		maintenance.GET("/bikes/:reg", maintenanceHandler.BikeByReg)
		maintenance.POST("/attachments", maintenanceHandler.UploadAttachments)
		maintenance.POST("/records", maintenanceHandler.Submit)
		maintenance.GET("/records", maintenanceHandler.List)
		maintenance.GET("/records/:id", maintenanceHandler.Get)
		maintenance.PATCH("/records/:id/parts/:index", canEdit, maintenanceHandler.UpdatePartStatus)
		maintenance.DELETE("/records/:id", canDelete, maintenanceHandler.Delete)
		maintenance.DELETE("/records", canDelete, maintenanceHandler.Clear)
		maintenance.POST("/drafts", maintenanceHandler.SaveDraft)
		maintenance.GET("/drafts", maintenanceHandler.ListDrafts)
		maintenance.GET("/export/records", canExport, exportHandler.Records)
		maintenance.GET("/export/summary", canExport, exportHandler.Summary)
	}

	// Masters routes
	masters := router.Group("/masters")
	masters.Use(auth)
	{
		masters.GET("", mastersHandler.Get)
		masters.POST("/cities", canEdit, mastersHandler.AddCity)
		masters.POST("/city-managers", canEdit, mastersHandler.AddCityManager)
		masters.POST("/parts", canEdit, mastersHandler.AddPart)
	}
	return &Router{router: router}, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

// Serve blocks until the server stops. A Shutdown makes it return nil.
func (r *Router) Serve(addr string) error {
	r.server = &http.Server{Addr: addr, Handler: r.router}
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
