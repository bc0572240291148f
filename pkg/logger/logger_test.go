package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estatecrm-api/pkg/logger"
)

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "vociferante"})
	assert.Equal(t, zerolog.InfoLevel, log.Zerolog().GetLevel())

	log = logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, log.Zerolog().GetLevel())
}

func TestNew_EstampaElServicio(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "api"})

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	assert.Contains(t, buf.String(), `"service":"api"`)
	assert.Contains(t, buf.String(), `"message":"arrancando"`)
}
