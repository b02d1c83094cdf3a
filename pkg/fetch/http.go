package fetch

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTP exposes the portal fetcher as an admin endpoint.
type HTTP struct {
	f          *Fetcher
	defaultURL string
}

func NewHTTP(f *Fetcher, defaultURL string) *HTTP {
	return &HTTP{f: f, defaultURL: defaultURL}
}

func (h *HTTP) Register(e *echo.Echo) {
	e.Group("/api/v1").POST("/admin/fetch", h.fetch)
}

type fetchReq struct {
	URL string `json:"url"`
}

func (h *HTTP) fetch(c echo.Context) error {
	var req fetchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	pageURL := req.URL
	if pageURL == "" {
		pageURL = h.defaultURL
	}
	if pageURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url is required"})
	}
	saved, err := h.f.FetchAll(pageURL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error(), "saved": saved})
	}
	return c.JSON(http.StatusOK, echo.Map{"saved": saved})
}
