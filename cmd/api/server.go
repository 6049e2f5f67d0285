package main

import (
	"database/sql"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"meetapi/docs"
	handlers "meetapi/internal/http/handler"
	"meetapi/internal/http/middleware"
	"meetapi/internal/mapper"
	"meetapi/internal/repository/postgres"
	"meetapi/internal/service"
	"meetapi/internal/storage"
)

type serverDeps struct {
	db        *sql.DB
	store     storage.Storage
	log       *logrus.Logger
	registry  *prometheus.Registry
	bodyLimit int
}

// newServer wires repositories, services and middleware into a Fiber app.
func newServer(d serverDeps) (*fiber.App, error) {
	meetingRepo := postgres.NewMeetingPostgres(d.db)
	notificationRepo := postgres.NewNotificationPostgres(d.db)

	meetingSvc := service.NewMeetingService(meetingRepo, mapper.Meetings{}, d.log)
	notificationSvc := service.NewNotificationService(notificationRepo, meetingRepo, mapper.Notifications{}, d.log)
	fileSvc := service.NewFileService(d.store, d.log)

	d.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom, err := middleware.NewPrometheusMiddleware(d.registry)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "meetapi",
		ErrorHandler:          handlers.ErrorHandler(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             d.bodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	// RequestID adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(d.log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, d.db, meetingSvc, notificationSvc, fileSvc)

	return app, nil
}
