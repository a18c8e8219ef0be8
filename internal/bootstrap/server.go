package bootstrap

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	httpecho "github.com/JHCss26/ukg-internal/internal/interfaces/http/echo"
)

func NewHTTPServer(db *gorm.DB, syncHandler *httpecho.SyncHandler, reportHandler *httpecho.ReportHandler) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("10M"))

	httpecho.RegisterRoutes(server, syncHandler, reportHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	server.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server.GET("/api/v1/status", func(c echo.Context) error {
		start := time.Now()
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.JSON(http.StatusOK, map[string]any{
				"service":  "ukg-internal",
				"database": map[string]any{"ok": false, "error": err.Error()},
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"service":  "ukg-internal",
			"database": map[string]any{"ok": true, "latency_ms": time.Since(start).Milliseconds()},
		})
	})

	return server
}
