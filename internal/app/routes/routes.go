package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yigit/turmas/internal/app/controllers"
)

// Controllers bundles the handlers mounted by SetupRouter
type Controllers struct {
	Data        *controllers.DataController
	Sections    *controllers.SectionController
	Catalog     *controllers.CatalogController
	Students    *controllers.StudentController
	Offerings   *controllers.OfferingController
	Enrollments *controllers.EnrollmentController
}

// Options holds the optional non-API surfaces
type Options struct {
	// StaticDir holds index.html and assets; skipped when missing
	StaticDir string
	// MetricsPath and MetricsHandler expose Prometheus metrics when both are set
	MetricsPath    string
	MetricsHandler http.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, opts Options) {
	router.GET("/health", c.Data.Health)
	if opts.MetricsPath != "" && opts.MetricsHandler != nil {
		router.GET(opts.MetricsPath, gin.WrapH(opts.MetricsHandler))
	}

	api := router.Group("/api")
	api.GET("/data", c.Data.GetData)

	sections := api.Group("/sections")
	{
		sections.POST("", c.Sections.CreateSection)
		sections.PUT("/:id", c.Sections.UpdateSection)
		sections.DELETE("/:id", c.Sections.DeleteSection)
	}

	catalog := api.Group("/catalog")
	{
		catalog.POST("", c.Catalog.CreateEntry)
		catalog.PUT("/:id", c.Catalog.UpdateEntry)
		catalog.DELETE("/:id", c.Catalog.DeleteEntry)
	}

	students := api.Group("/students")
	{
		students.POST("", c.Students.CreateStudent)
		students.PUT("/:id", c.Students.UpdateStudent)
		students.DELETE("/:id", c.Students.DeleteStudent)
	}

	offerings := api.Group("/offerings")
	{
		offerings.POST("", c.Offerings.CreateOffering)
		offerings.PUT("/:id", c.Offerings.UpdateOffering)
		offerings.DELETE("/:id", c.Offerings.DeleteOffering)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.POST("", c.Enrollments.CreateEnrollment)
		enrollments.PUT("/:id", c.Enrollments.UpdateEnrollment)
		enrollments.DELETE("/:id", c.Enrollments.DeleteEnrollment)
	}

	setupStatic(router, opts.StaticDir)
}

// setupStatic serves the UI page at / and its assets under /static
func setupStatic(router *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}

	index := filepath.Join(dir, "index.html")
	router.GET("/", func(ctx *gin.Context) {
		ctx.File(index)
	})

	assets := filepath.Join(dir, "static")
	if info, err := os.Stat(assets); err == nil && info.IsDir() {
		router.Static("/static", assets)
	}
}
