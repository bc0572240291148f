package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config del logger del proceso.
type Config struct {
	Env     string // development escribe consola legible; cualquier otro valor, JSON
	Level   string // nivel mínimo (sintaxis de zerolog.ParseLevel); vacío o inválido cae a info
	Service string // se estampa como campo service en cada línea
}

// Logger envoltorio fino sobre zerolog. Los colaboradores de infraestructura
// no dependen de él: reciben el zerolog.Logger interno vía Zerolog().
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del proceso y lo instala también como global de
// zerolog para las librerías que escriben por esa vía.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Zerolog devuelve el logger interno para colaboradores que reciben un
// zerolog.Logger plano.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
