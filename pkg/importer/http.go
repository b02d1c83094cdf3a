package importer

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ecoclub/pkg/dataset"
)

type HTTP struct {
	im         *Importer
	invalidate func()
}

// NewHTTP exposes the importer; invalidate is called after a successful run
// so the next report request picks up the new snapshot.
func NewHTTP(im *Importer, invalidate func()) *HTTP {
	return &HTTP{im: im, invalidate: invalidate}
}

func (h *HTTP) Register(e *echo.Echo) {
	e.Group("/api/v1").POST("/admin/import", h.runImport)
}

func (h *HTTP) runImport(c echo.Context) error {
	res, err := h.im.Run()
	if err != nil {
		var dsErr *dataset.DataSourceError
		if errors.As(err, &dsErr) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": dsErr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if h.invalidate != nil {
		h.invalidate()
	}
	return c.JSON(http.StatusOK, res)
}
