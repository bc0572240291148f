package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/estatecrm-api/internal/application/notify"
	"github.com/jhoicas/estatecrm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estatecrm-api/pkg/config"
	"github.com/jhoicas/estatecrm-api/pkg/logger"
)

// Escáner periódico de seguimientos por vencer. Corre como proceso aparte
// del API; el spec de cron se controla con FOLLOWUP_CRON (default cada hora).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "followup",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	leadRepo := postgres.NewLeadRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	scanner := notify.NewScanner(leadRepo, notificationRepo, log.Zerolog())

	spec := os.Getenv("FOLLOWUP_CRON")
	if spec == "" {
		spec = "@every 1h"
	}

	c := cron.New()
	_, err = c.AddFunc(spec, func() {
		created, err := scanner.Scan(time.Now().UTC())
		if err != nil {
			log.Error().Err(err).Msg("escaneo de seguimientos")
			return
		}
		log.Info().Int("notifications_created", created).Msg("escaneo de seguimientos completado")
	})
	if err != nil {
		log.Fatal().Err(err).Str("spec", spec).Msg("spec de cron inválido")
	}

	log.Info().Str("spec", spec).Msg("escáner de seguimientos iniciado")
	c.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopCtx := c.Stop()
	<-stopCtx.Done()
	log.Info().Msg("escáner detenido")
}
