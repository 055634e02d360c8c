package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/outfit-advisor/internal/infra/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"selected": func(current, option string) bool { return current == option },
}).ParseFS(templatesFS, "templates/*.html"))

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.SetHTMLTemplate(pageTemplates)
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pages := router.Group("/")
	pages.Use(
		errorPageMiddleware(handler),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)
	{
		pages.GET("/", handler.Home)
		pages.POST("/recommend", handler.Recommend)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
