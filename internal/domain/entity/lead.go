package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas del pipeline de un Lead.
const (
	StageNew         = "new"
	StageContacted   = "contacted"
	StageSiteVisit   = "site_visit_scheduled"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed_won"
	StageClosedLost  = "closed_lost"
)

// Stages orden canónico de etapas del pipeline.
var Stages = []string{
	StageNew, StageContacted, StageSiteVisit,
	StageNegotiation, StageClosedWon, StageClosedLost,
}

// SourceWebsite origen de leads capturados sin autenticación.
const (
	SourceWebsite = "website"
	SourceEmbed   = "website_embed"
)

// Lead representa un prospecto de compra/alquiler; entidad central del fan-out.
type Lead struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	Source             string // website, manual, referral, etc.
	Stage              string
	PropertyID         *string
	AssignedEmployeeID *string
	Budget             *decimal.Decimal
	Notes              string
	LastContactDate    *time.Time
	NextFollowUp       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsClosed indica si el lead está en una etapa terminal.
func (l *Lead) IsClosed() bool {
	return l.Stage == StageClosedWon || l.Stage == StageClosedLost
}
