package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/labstack/echo/v4"
)

const visitorCookie = "VISITOR_ID"

// DevLogin tags every request with a visitor id from a cookie, minting one
// when absent. The dashboard is read-only; this only feeds the visitor
// counter and the whoami endpoint.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(visitorCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = newVisitorID()
				}
				c.SetCookie(&http.Cookie{Name: visitorCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

func newVisitorID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "V_DEV_DEFAULT"
	}
	return "V_" + hex.EncodeToString(b)
}
