package app

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"cv-parser/constants"
	"cv-parser/internal/llm"
)

// Setup all of the handlers to their respective endpoints
func (app *App) setupHandlers(r *gin.Engine) {
	r.GET("/", app.handlePage(app.homePageHandler, "index"))
	r.POST("/hx/parse", app.handlePage(app.parseHandler, "result"))
	r.GET("/outputs/:name", app.downloadJSONHandler)
	r.GET("/outputs/:name/xlsx", app.downloadXLSXHandler)
}

func (app *App) homePageHandler(*gin.Context, *slog.Logger) (any, error) {
	return struct {
		Title string
	}{"LLM CV Parser"}, nil
}

// ParseResultData feeds the result fragment. Either Error is set, or the
// parse succeeded and the JSON plus download links are shown.
type ParseResultData struct {
	Status       string
	Error        string
	PrettyJSON   string
	DownloadName string
}

func (app *App) parseHandler(ctx *gin.Context, logger *slog.Logger) (any, error) {
	file, err := ctx.FormFile("resume")
	if err != nil {
		return ParseResultData{Error: "No file uploaded."}, nil
	}

	if file.Size > int64(app.config.Server.MaxUploadMB)<<20 {
		return ParseResultData{Error: "File too large."}, nil
	}

	ext := filepath.Ext(file.Filename)
	if _, ok := constants.AllowedExtensions[constants.NormalizeExt(ext)]; !ok {
		logger.Warn("rejected upload", "filename", file.Filename, "ext", ext)
		return ParseResultData{Error: "Unsupported file type " + ext +
			" (supported: " + strings.Join(constants.SupportedExtensions(), ", ") + ")."}, nil
	}

	// Keep the upload under its original name so the artifact stem matches it.
	stable := filepath.Join(app.config.Extract.OutputDir, filepath.Base(file.Filename))
	if err := ctx.SaveUploadedFile(file, stable); err != nil {
		logger.Error("save upload failed", "filename", file.Filename, "error", err)
		return ParseResultData{Error: "Failed to store the upload."}, nil
	}

	res, err := app.parser.ParseFile(ctx.Request.Context(), stable)
	if err != nil {
		logger.Error("parse failed", "filename", file.Filename, "error", err)
		return ParseResultData{Error: "Error: " + err.Error()}, nil
	}

	var pretty strings.Builder
	enc := json.NewEncoder(&pretty)
	enc.SetIndent("", "  ")
	var v any
	if err := json.Unmarshal(res.RawJSON, &v); err == nil {
		_ = enc.Encode(v)
	} else {
		pretty.Write(res.RawJSON)
	}

	return ParseResultData{
		Status:       "Parsed successfully.",
		PrettyJSON:   pretty.String(),
		DownloadName: filepath.Base(res.ArtifactPath),
	}, nil
}

// artifactPath validates a requested artifact name and resolves it inside
// the output directory. Rejects traversal and anything that is not a
// *_parsed.json produced by the pipeline.
func (app *App) artifactPath(name string) (string, bool) {
	if name != filepath.Base(name) || !strings.HasSuffix(name, "_parsed.json") {
		return "", false
	}
	p := filepath.Join(app.config.Extract.OutputDir, name)
	if st, err := os.Stat(p); err != nil || st.IsDir() {
		return "", false
	}
	return p, true
}

func (app *App) downloadJSONHandler(ctx *gin.Context) {
	name := ctx.Param("name")
	p, ok := app.artifactPath(name)
	if !ok {
		ctx.String(http.StatusNotFound, "not found")
		return
	}
	ctx.FileAttachment(p, name)
}

func (app *App) downloadXLSXHandler(ctx *gin.Context) {
	name := ctx.Param("name")
	p, ok := app.artifactPath(name)
	if !ok {
		ctx.String(http.StatusNotFound, "not found")
		return
	}

	raw, err := os.ReadFile(p)
	if err != nil {
		app.logger.Error("read artifact failed", "name", name, "error", err)
		ctx.String(http.StatusInternalServerError, "read artifact failed")
		return
	}
	var cv llm.CVFields
	if err := json.Unmarshal(raw, &cv); err != nil {
		app.logger.Error("decode artifact failed", "name", name, "error", err)
		ctx.String(http.StatusInternalServerError, "decode artifact failed")
		return
	}

	wb, err := app.exporter.BuildWorkbook(cv)
	if err != nil {
		app.logger.Error("build workbook failed", "name", name, "error", err)
		ctx.String(http.StatusInternalServerError, "build workbook failed")
		return
	}

	xlsxName := strings.TrimSuffix(name, ".json") + ".xlsx"
	ctx.Header("Content-Disposition", `attachment; filename="`+xlsxName+`"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", wb)
}
