package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	Notifications(c echo.Context) error
	NotificationsCSV(c echo.Context) error
	Plantation(c echo.Context) error
	PlantationCSV(c echo.Context) error
	Summary(c echo.Context) error
	DistrictSummaryCSV(c echo.Context) error
	ConsolidatedXLSX(c echo.Context) error
	Districts(c echo.Context) error
	Schools(c echo.Context) error
	Reload(c echo.Context) error
}
