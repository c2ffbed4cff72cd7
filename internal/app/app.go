package app

import (
	"context"
	"embed"
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cv-parser/internal/common"
	"cv-parser/internal/export"
	"cv-parser/internal/pipeline"
)

//go:embed templates
var templatesFS embed.FS

// Parser runs one upload through the extract+LLM pipeline.
type Parser interface {
	ParseFile(ctx context.Context, path string) (pipeline.Result, error)
}

// A function that handles a request and returns data for a template.
type PageDataHandler func(ctx *gin.Context, logger *slog.Logger) (any, error)

// App collects all data for running the webserver.
type App struct {
	config   *common.Config
	logger   *slog.Logger
	parser   Parser
	exporter *export.Service
}

func NewApp(cfg *common.Config, parser Parser, exporter *export.Service, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		config:   cfg,
		logger:   logger,
		parser:   parser,
		exporter: exporter,
	}
}

// Run the app, returning a fatal error.
func (app *App) Run() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = int64(app.config.Server.MaxUploadMB) << 20

	app.setupHandlers(r)

	app.logger.Info("server starting", "addr", app.config.Server.HTTPAddr)
	return r.Run(app.config.Server.HTTPAddr)
}

// Create a handler that calls the data handler then renders the data using the template.
func (app *App) handlePage(dataHandler PageDataHandler, tmplName string) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		requestLogger := app.logger.With("req_id", uuid.New().String())
		requestLogger.Info("incoming request", "path", ctx.Request.URL.Path)

		tmpl, err := template.ParseFS(templatesFS, "templates/"+tmplName+".html")
		if err != nil {
			requestLogger.Error("template parse failed", "template", tmplName, "error", err)
			ctx.Status(500)
			return
		}

		data, err := dataHandler(ctx, requestLogger)
		if err != nil {
			requestLogger.Error("page data handler failed", "template", tmplName, "error", err)
			ctx.Status(500)
			return
		}

		ctx.Header("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(ctx.Writer, tmplName+".html", data); err != nil {
			requestLogger.Error("template render failed", "template", tmplName, "error", err)
			ctx.Status(500)
			return
		}
		requestLogger.Info("finished request")
	}
}
