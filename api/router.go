package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/simulations", handler.RunSimulation)
		v1.Get("/simulations/last", handler.LastSimulation)
		v1.Get("/simulations/last/chart", handler.LastSimulationChart)
	}
}
