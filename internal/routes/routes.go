package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/rafael/betterlife-api/internal/handlers"
	"github.com/rafael/betterlife-api/internal/middleware"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Post("/device-token", handlers.RegisterDeviceToken)

	// Catalog for the event logging flow
	protected.Get("/actions", handlers.ListActions)

	// Event log
	events := protected.Group("/events")
	events.Get("/", handlers.ListEvents)
	events.Post("/", handlers.CreateEvent)
	events.Put("/:id", handlers.UpdateEvent)
	events.Delete("/:id", handlers.DeleteEvent)

	// Derived score snapshots
	protected.Get("/score", handlers.GetScore)
	protected.Get("/score/history", handlers.GetScoreHistory)

	// Trophies & goals with evaluated progress
	trophies := protected.Group("/trophies")
	trophies.Get("/", handlers.ListTrophies)
	trophies.Get("/:id/progress", handlers.GetTrophyProgress)
	trophies.Post("/evaluate", handlers.EvaluateTrophies)

	// Notifications
	notifications := protected.Group("/notifications")
	notifications.Get("/", handlers.GetNotifications)
	notifications.Put("/:id/read", handlers.MarkNotificationRead)
	notifications.Post("/read-all", handlers.MarkAllNotificationsRead)

	// Admin CRUD for the catalog and trophy definitions
	admin := protected.Group("/admin")
	admin.Get("/actions", handlers.ListActions)
	admin.Post("/actions", handlers.CreateAction)
	admin.Put("/actions/:id", handlers.UpdateAction)
	admin.Delete("/actions/:id", handlers.DeleteAction)

	admin.Get("/trophies", handlers.ListTrophies)
	admin.Post("/trophies", handlers.CreateTrophy)
	admin.Put("/trophies/:id", handlers.UpdateTrophy)
	admin.Delete("/trophies/:id", handlers.DeleteTrophy)

	// WebSocket for live score updates across the user's devices
	app.Use("/ws", handlers.WebSocketUpgrade())
	app.Get("/ws", websocket.New(handlers.HandleWebSocket))
}
