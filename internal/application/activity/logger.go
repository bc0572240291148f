package activity

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// Logger escribe el rastro de auditoría en modo best-effort: un fallo al
// registrar nunca se propaga a la operación que lo origina, solo se loguea.
type Logger struct {
	repo repository.ActivityRepository
	log  zerolog.Logger
}

// NewLogger construye el registrador de actividades.
func NewLogger(repo repository.ActivityRepository, log zerolog.Logger) *Logger {
	return &Logger{repo: repo, log: log}
}

// Record persiste una actividad. La descripción llega ya interpolada.
func (l *Logger) Record(userID, activityType, description, entityType, entityID string, metadata map[string]any) {
	a := &entity.Activity{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		EntityType:   entityType,
		EntityID:     entityID,
		Metadata:     metadata,
		CreatedAt:    time.Now().UTC(),
	}
	if err := l.repo.Create(a); err != nil {
		l.log.Error().Err(err).
			Str("activity_type", activityType).
			Str("entity_id", entityID).
			Msg("no se pudo registrar la actividad")
	}
}
