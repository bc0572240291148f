package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/application/auth"
	"github.com/jhoicas/estatecrm-api/internal/application/notify"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/infrastructure/mail"
	"github.com/jhoicas/estatecrm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estatecrm-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/estatecrm-api/internal/interfaces/http"
	"github.com/jhoicas/estatecrm-api/pkg/config"
	"github.com/jhoicas/estatecrm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "api",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	commRepo := postgres.NewCommunicationRepository(pool)
	postSaleRepo := postgres.NewPostSaleRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	ticketRepo := postgres.NewSupportTicketRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	shortcodeRepo := postgres.NewShortcodeRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	store, err := storage.NewLocalStore(cfg.Upload)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de uploads")
	}
	mailer := mail.NewSender(cfg.SMTP, log.Zerolog())

	actLogger := activity.NewLogger(activityRepo, log.Zerolog())
	audience := notify.NewManagerAudience(userRepo)
	fanout := notify.NewFanout(notificationRepo, audience, log.Zerolog())
	scanner := notify.NewScanner(leadRepo, notificationRepo, log.Zerolog())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(userRepo, reportRepo, mailer, actLogger, log.Zerolog())
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, userRepo, txRunner, fanout, actLogger)
	leadUC := usecase.NewLeadUseCase(leadRepo, commRepo, propertyRepo, fanout, actLogger)
	postSaleUC := usecase.NewPostSaleUseCase(postSaleRepo, paymentRepo, ticketRepo, leadRepo, propertyRepo, fanout, actLogger)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, leadRepo, scanner)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, propertyRepo, actLogger)
	shortcodeUC := usecase.NewShortcodeUseCase(shortcodeRepo, propertyRepo, actLogger)
	dashboardUC := usecase.NewDashboardUseCase(reportRepo, activityRepo, leadRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		EmployeeUC:     employeeUC,
		PropertyUC:     propertyUC,
		LeadUC:         leadUC,
		PostSaleUC:     postSaleUC,
		NotificationUC: notificationUC,
		ActivityUC:     activityUC,
		FavoriteUC:     favoriteUC,
		ShortcodeUC:    shortcodeUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		Store:          store,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
