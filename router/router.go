package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	fieldCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	measCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	schedCtrl interface{ List(echo.Context) error },
	planGenerate func(echo.Context) error,
	planGet func(echo.Context) error,
	planList func(echo.Context) error,
	planExport func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/fields", fieldCtrl.Create)
	e.GET("/fields", fieldCtrl.List)
	e.GET("/fields/:id", fieldCtrl.Get)

	e.POST("/fields/:id/readings", measCtrl.Create)
	e.GET("/fields/:id/readings", measCtrl.List)
	e.GET("/fields/:id/schedule", schedCtrl.List)

	g := e.Group("/plans")
	g.POST("/:date", planGenerate)
	g.GET("", planList)
	g.GET("/:date", planGet)
	g.GET("/:date/export", planExport)

	return e
}
