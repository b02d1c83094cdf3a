package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"ecoclub/config"
	"ecoclub/database"
	"ecoclub/pkg/middleware"
	"ecoclub/router"

	"ecoclub/pkg/dataset"
	dsRepoImp "ecoclub/pkg/dataset/repositoryImp"

	reportCtrlImp "ecoclub/pkg/report/controllerImp"
	reportSvcImp "ecoclub/pkg/report/serviceImp"

	"ecoclub/pkg/fetch"
	"ecoclub/pkg/importer"
	"ecoclub/pkg/visitor"

	authCtrlImp "ecoclub/pkg/auth/controllerImp"
	healthCtrlImp "ecoclub/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Dataset: files first, imported sqlite snapshot as fallback,
	//    behind a TTL cache
	fileRepo := dsRepoImp.NewFile(cfg.DataDir)
	storeRepo := dsRepoImp.NewSQLite(db)
	cache := dataset.NewCache(dsRepoImp.NewFallback(fileRepo, storeRepo), cfg.CacheTTL)

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.DevLogin())

	// Visitor counter rides on the devlogin visitor id, so it must sit
	// after DevLogin in the chain or first visits go uncounted
	tracker := visitor.NewTracker(db)
	e.Use(visitor.Middleware(tracker))
	visitor.NewHTTP(tracker).Register(e)

	// Importer + portal fetcher admin endpoints
	imp := importer.New(fileRepo, storeRepo, cfg.DataDir)
	importer.NewHTTP(imp, cache.Invalidate).Register(e)
	fetch.NewHTTP(fetch.New(cfg.DataDir), cfg.PortalURL).Register(e)

	// Static dashboard
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/app.js"); err != nil {
		log.Printf("WARN: static/app.js not found: %v", err)
	}

	// 5) Reports
	rSvc := reportSvcImp.New(cache)
	rCtrl := reportCtrlImp.New(rSvc)

	// 6) Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cache)

	// 7) Router
	r := router.New(e, rCtrl, authCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
