package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"irrig/config"
	"irrig/database"
	"irrig/router"

	fieldCtrlImp "irrig/pkg/field/controllerImp"
	fieldRepoImp "irrig/pkg/field/repositoryImp"

	measCtrlImp "irrig/pkg/measure/controllerImp"
	measRepoImp "irrig/pkg/measure/repositoryImp"

	schedCtrlImp "irrig/pkg/schedule/controllerImp"
	schedRepoImp "irrig/pkg/schedule/repositoryImp"

	planCtrlImp "irrig/pkg/plan/controllerImp"
	planRepoImp "irrig/pkg/plan/repositoryImp"
	planSvc "irrig/pkg/plan/serviceImp"

	healthCtrlImp "irrig/pkg/health/controllerImp"

	"irrig/pkg/forecast"
	"irrig/pkg/weather"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + catalog seed
	db := database.OpenSQLite(cfg.DBPath)
	if err := database.SeedCatalog(db, cfg.DataDir); err != nil {
		log.Printf("seed warn: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Weather source: live endpoint when configured, synthetic otherwise
	var src weather.Source
	if cfg.WeatherURL != "" {
		src = weather.NewOpenMeteo(cfg.WeatherURL, cfg.Latitude, cfg.Longitude)
	}

	// 5) Repos
	fRepo := fieldRepoImp.New(db)
	mRepo := measRepoImp.New(db)
	sRepo := schedRepoImp.New(db)
	pRepo := planRepoImp.New(db)

	// 6) Plan service: needs -> rules -> scheduler, persisted per run
	svc := planSvc.NewPlanService(fRepo, mRepo, pRepo, sRepo, src, forecast.Heuristic{}, planSvc.Config{
		PumpQmaxLPM:  cfg.PumpQmaxLPM,
		WindowStart:  cfg.WindowStart,
		WindowEnd:    cfg.WindowEnd,
		SlotMinutes:  cfg.SlotMinutes,
		SolverBudget: time.Duration(cfg.SolverBudget * float64(time.Second)),
		SafetyMm:     cfg.SafetyMm,
	})

	// 7) Controllers
	fCtrl := fieldCtrlImp.New(fRepo)
	meCtrl := measCtrlImp.New(mRepo)
	scCtrl := schedCtrlImp.New(sRepo)
	plCtrl := planCtrlImp.NewPlanCtrl(svc, pRepo, sRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		fCtrl,
		meCtrl,
		scCtrl,
		plCtrl.Generate,
		plCtrl.Get,
		plCtrl.List,
		plCtrl.Export,
		hCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
