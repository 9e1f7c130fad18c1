package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowRoot)
	app.Get("/auth/login", handler.ShowLoginPage)
	app.Get("/auth/setup", handler.ShowSetupPage)

	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/tasks", handler.AuthRequired, handler.ShowTasks)
	app.Get("/calories", handler.AuthRequired, handler.ShowCalories)
	app.Get("/diary", handler.AuthRequired, handler.ShowDiary)
	app.Get("/settings", handler.AuthRequired, handler.ShowSettings)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/setup", handler.Setup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Post("", handler.CreateTask)
	tasks.Put("", handler.ReorderTasks)
	tasks.Delete("/:id", handler.DeactivateTask)

	completions := api.Group("/completions", handler.AuthRequired)
	completions.Post("", handler.MutateCompletion)
	completions.Post("/adhoc", handler.AddAdhocCompletion)

	api.Post("/calories", handler.AuthRequired, handler.SaveCalories)
	api.Post("/weight", handler.AuthRequired, handler.SaveWeight)
	api.Post("/diary", handler.AuthRequired, handler.SaveDiary)
	api.Post("/settings", handler.AuthRequired, handler.SaveSettings)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
