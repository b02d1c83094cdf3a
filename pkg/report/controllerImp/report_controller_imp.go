package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ecoclub/pkg/dataset"
	"ecoclub/pkg/export"
	"ecoclub/pkg/report"
	rsvc "ecoclub/pkg/report/service"
)

type ReportCtrl struct{ s rsvc.Service }

func New(s rsvc.Service) *ReportCtrl { return &ReportCtrl{s: s} }

func parseFilter(c echo.Context) report.FilterSpec {
	mgmt := c.QueryParam("management")
	if mgmt == "" {
		mgmt = c.QueryParam("school_type")
	}
	return report.FilterSpec{
		District:   c.QueryParam("district"),
		School:     c.QueryParam("school"),
		Management: mgmt,
		Status:     report.ParseStatus(c.QueryParam("status")),
	}
}

// jsonErr maps a DataSourceError to 503 with a user-readable message; the
// dashboard shows it verbatim with the list of expected files.
func jsonErr(c echo.Context, err error) error {
	var dsErr *dataset.DataSourceError
	if errors.As(err, &dsErr) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": dsErr.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func (h *ReportCtrl) Notifications(c echo.Context) error {
	view, err := h.s.NotificationReport(parseFilter(c))
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ReportCtrl) NotificationsCSV(c echo.Context) error {
	view, err := h.s.NotificationReport(parseFilter(c))
	if err != nil {
		return jsonErr(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteNotificationCSV(&buf, view.Rows); err != nil {
		return jsonErr(c, err)
	}
	return attachment(c, buf.Bytes(), "text/csv", "notification_report", "csv")
}

func (h *ReportCtrl) Plantation(c echo.Context) error {
	view, err := h.s.PlantationReport(parseFilter(c))
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ReportCtrl) PlantationCSV(c echo.Context) error {
	view, err := h.s.PlantationReport(parseFilter(c))
	if err != nil {
		return jsonErr(c, err)
	}
	var buf bytes.Buffer
	if err := export.WritePlantationCSV(&buf, view.Rows); err != nil {
		return jsonErr(c, err)
	}
	return attachment(c, buf.Bytes(), "text/csv", "tree_report", "csv")
}

func (h *ReportCtrl) Summary(c echo.Context) error {
	view, err := h.s.Summary()
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ReportCtrl) DistrictSummaryCSV(c echo.Context) error {
	view, err := h.s.Summary()
	if err != nil {
		return jsonErr(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteDistrictSummaryCSV(&buf, view.Districts); err != nil {
		return jsonErr(c, err)
	}
	return attachment(c, buf.Bytes(), "text/csv", "district_summary", "csv")
}

func (h *ReportCtrl) ConsolidatedXLSX(c echo.Context) error {
	snap, err := h.s.Snapshot()
	if err != nil {
		return jsonErr(c, err)
	}
	f, err := export.Consolidated(snap)
	if err != nil {
		return jsonErr(c, err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return jsonErr(c, err)
	}
	return attachment(c, buf.Bytes(),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"all_reports_consolidated", "xlsx")
}

func (h *ReportCtrl) Districts(c echo.Context) error {
	out, err := h.s.Districts()
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"districts": out})
}

func (h *ReportCtrl) Schools(c echo.Context) error {
	out, err := h.s.Schools(c.QueryParam("district"))
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"schools": out})
}

func (h *ReportCtrl) Reload(c echo.Context) error {
	snap, err := h.s.Reload()
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"loaded_at": snap.LoadedAt,
		"source":    snap.Source,
		"schools":   len(snap.Schools),
		"skipped":   snap.Skipped,
	})
}

func attachment(c echo.Context, data []byte, mime, stem, ext string) error {
	name := fmt.Sprintf("%s_%s.%s", stem, time.Now().Format("20060102_150405"), ext)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK, mime, data)
}
