package router

import (
	"github.com/labstack/echo/v4"

	reportCtrl "ecoclub/pkg/report/controller"
)

func New(
	e *echo.Echo,
	reports reportCtrl.ReportController,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/whoami", authCtrl.WhoAmI)
	e.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/v1")

	api.GET("/reports/notifications", reports.Notifications)
	api.GET("/reports/notifications.csv", reports.NotificationsCSV)
	api.GET("/reports/plantation", reports.Plantation)
	api.GET("/reports/plantation.csv", reports.PlantationCSV)
	api.GET("/reports/summary", reports.Summary)
	api.GET("/reports/summary/districts.csv", reports.DistrictSummaryCSV)
	api.GET("/reports/consolidated.xlsx", reports.ConsolidatedXLSX)

	api.GET("/districts", reports.Districts)
	api.GET("/schools", reports.Schools)

	api.POST("/admin/reload", reports.Reload)

	return e
}
