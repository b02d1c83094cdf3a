package visitor

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTP exposes the visitor counter over the API.
type HTTP struct{ t *Tracker }

func NewHTTP(t *Tracker) *HTTP { return &HTTP{t: t} }

func (h *HTTP) Register(e *echo.Echo) {
	e.Group("/api/v1").GET("/stats/visitors", h.stats)
}

func (h *HTTP) stats(c echo.Context) error {
	s, err := h.t.Stats()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

// Middleware records a visit on dashboard page loads. It must run after
// the devlogin middleware, which mints the visitor id on a first request
// that carries no cookie yet. Counting failures never block the request.
func Middleware(t *Tracker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodGet && c.Path() == "/" {
				uid, _ := c.Get("uid").(string)
				if err := t.Track(uid); err != nil {
					log.Printf("[visitor] track: %v", err)
				}
			}
			return next(c)
		}
	}
}
