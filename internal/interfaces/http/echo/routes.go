package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, syncHandler *SyncHandler, reportHandler *ReportHandler) {
	server.POST("/api/v1/employees/sync", syncHandler.Sync)
	server.POST("/api/v1/reports/:settingId/preview", reportHandler.Preview)
	server.POST("/api/v1/reports/:settingId/run", reportHandler.Run)
}
