package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ecoclub/pkg/dataset"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	cache *dataset.Cache
}

func NewHealthCtrl(db *gorm.DB, cache *dataset.Cache) *HealthCtrl {
	return &HealthCtrl{db: db, cache: cache}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	// Snapshot is reported without forcing a load; an empty cache is not
	// unhealthy, the first report request fills it.
	snapshot := map[string]any{"loaded": false}
	if snap, loadedAt, ok := h.cache.Peek(); ok {
		snapshot = map[string]any{
			"loaded":    true,
			"loaded_at": loadedAt.Format(time.RFC3339),
			"schools":   len(snap.Schools),
			"source":    snap.Source,
			"age_sec":   int(time.Since(loadedAt).Seconds()),
			"skipped":   snap.Skipped,
		}
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"snapshot": snapshot,
		"time":     time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
