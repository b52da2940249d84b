package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/TillGrassi/My-Portfolio/middleware"
	"github.com/TillGrassi/My-Portfolio/storage"
	"github.com/TillGrassi/My-Portfolio/uploads"
)

type RouterConfig struct {
	Store          storage.Store
	Uploads        *uploads.Saver
	Admin          middleware.Authorizer
	UploadDir      string
	AssetsDir      string
	AllowedOrigins []string
	TemplateGlob   string // empty disables the HTML home page
}

// NewRouter wires the full HTTP surface: public gallery and contact
// routes, the gated admin group, static files and the rendered home
// page.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	paintingHandler := &PaintingHandler{Store: cfg.Store, Uploads: cfg.Uploads}
	contactHandler := &ContactHandler{Store: cfg.Store}

	if cfg.TemplateGlob != "" {
		router.LoadHTMLGlob(cfg.TemplateGlob)
		homeHandler := &HomeHandler{Store: cfg.Store}
		router.GET("/", homeHandler.Index)
	}

	api := router.Group("/api")
	{
		api.GET("/paintings", paintingHandler.List)
		api.GET("/paintings/:id", paintingHandler.Get)
		api.POST("/contact", contactHandler.Submit)
	}

	admin := api.Group("/admin")
	auth := cfg.Admin
	if auth == nil {
		auth = middleware.AllowAll{}
	}
	admin.Use(middleware.RequireAdmin(auth))
	{
		admin.POST("/paintings", paintingHandler.Create)
		admin.PUT("/paintings/:id", paintingHandler.Update)
		admin.DELETE("/paintings/:id", paintingHandler.Delete)
		admin.GET("/messages", contactHandler.ListMessages)
	}

	if cfg.UploadDir != "" {
		router.Static("/uploads", cfg.UploadDir)
	}
	if cfg.AssetsDir != "" {
		router.Static("/assets", cfg.AssetsDir)
	}
	return router
}
