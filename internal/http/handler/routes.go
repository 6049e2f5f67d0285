package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"meetapi/internal/service"
)

// RegisterRoutes attaches the health, meeting, notification and file routes.
func RegisterRoutes(app *fiber.App, db *sql.DB, meetings service.MeetingService, notifications service.NotificationService, files service.FileService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	m := app.Group("/meetings")
	m.Get("/", ListMeetings(meetings))
	m.Post("/", CreateMeeting(meetings))
	m.Put("/", UpdateMeeting(meetings))
	// registered before /:id so "upcoming" is not parsed as an id
	m.Get("/upcoming", ListUpcomingMeetings(meetings))
	m.Get("/:id", GetMeeting(meetings))
	m.Delete("/:id", DeleteMeeting(meetings))

	n := app.Group("/notifications")
	n.Get("/", ListNotifications(notifications))
	n.Post("/", CreateNotification(notifications))
	n.Get("/:id", GetNotification(notifications))
	n.Delete("/:id", DeleteNotification(notifications))

	f := app.Group("/files")
	f.Post("/", UploadFile(files))
	f.Get("/:name", DownloadFile(files))
	f.Delete("/:name", DeleteFile(files))
}
