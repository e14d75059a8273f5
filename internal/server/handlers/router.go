package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Register wires routes and middleware. Unknown methods on known paths get
// echo's 405 for free.
func Register(
	e *echo.Echo,
	vehicleHandler *VehicleHandler,
	userHandler *UserHandler,
	mediaHandler *MediaHandler,
	healthHandler *HealthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", healthHandler.Check)

	e.GET("/vehicles", vehicleHandler.Get)
	e.POST("/vehicles", vehicleHandler.Post)
	e.PUT("/vehicles", vehicleHandler.Put)
	e.DELETE("/vehicles", vehicleHandler.Delete)

	e.GET("/users", userHandler.Get)
	e.POST("/users", userHandler.Post)

	e.GET("/media/upload-url", mediaHandler.UploadURL)
}
