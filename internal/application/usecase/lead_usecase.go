package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/notify"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// LeadUseCase gestión del pipeline de leads; origen principal del fan-out.
type LeadUseCase struct {
	leads      repository.LeadRepository
	comms      repository.CommunicationRepository
	properties repository.PropertyRepository
	fanout     *notify.Fanout
	activity   *activity.Logger
}

// NewLeadUseCase construye el caso de uso de leads.
func NewLeadUseCase(leads repository.LeadRepository, comms repository.CommunicationRepository,
	properties repository.PropertyRepository, fanout *notify.Fanout, act *activity.Logger) *LeadUseCase {
	return &LeadUseCase{leads: leads, comms: comms, properties: properties, fanout: fanout, activity: act}
}

// ToLeadResponse mapea un lead a su DTO de salida.
func ToLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:                 l.ID,
		Name:               l.Name,
		Email:              l.Email,
		Phone:              l.Phone,
		Source:             l.Source,
		Stage:              l.Stage,
		PropertyID:         l.PropertyID,
		AssignedEmployeeID: l.AssignedEmployeeID,
		Budget:             l.Budget,
		Notes:              l.Notes,
		LastContactDate:    l.LastContactDate,
		NextFollowUp:       l.NextFollowUp,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

// Create da de alta un lead autenticado. Si el asignado no es el creador se
// le avisa; los admins y managers (menos el actor) reciben la difusión.
func (uc *LeadUseCase) Create(actorID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	now := time.Now().UTC()
	stage := in.Stage
	if stage == "" {
		stage = entity.StageNew
	}
	source := in.Source
	if source == "" {
		source = "manual"
	}

	l := &entity.Lead{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Source:             source,
		Stage:              stage,
		PropertyID:         in.PropertyID,
		AssignedEmployeeID: in.AssignedEmployeeID,
		Budget:             in.Budget,
		Notes:              in.Notes,
		NextFollowUp:       in.NextFollowUp,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.leads.Create(l); err != nil {
		return nil, err
	}

	uc.activity.Record(actorID, entity.ActivityLeadAdded,
		fmt.Sprintf("Added lead %s", l.Name), "lead", l.ID, nil)

	if l.AssignedEmployeeID != nil && *l.AssignedEmployeeID != actorID {
		uc.fanout.NotifyUser(*l.AssignedEmployeeID, "New Lead Assigned",
			fmt.Sprintf("Lead %s has been assigned to you", l.Name),
			entity.NotificationLead, "lead", l.ID)
	}
	uc.fanout.NotifyManagers(actorID, "New Lead Created",
		fmt.Sprintf("Lead %s was created", l.Name),
		entity.NotificationLead, "lead", l.ID)

	return ToLeadResponse(l), nil
}

// CreateFromWebsite captura pública desde el formulario del sitio. Todos los
// admins y managers reciben el aviso (no hay actor que excluir).
func (uc *LeadUseCase) CreateFromWebsite(in dto.WebsiteFormRequest) (*dto.LeadResponse, error) {
	now := time.Now().UTC()
	l := &entity.Lead{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Source:     entity.SourceWebsite,
		Stage:      entity.StageNew,
		PropertyID: in.PropertyID,
		Notes:      in.Message,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.leads.Create(l); err != nil {
		return nil, err
	}

	uc.fanout.NotifyManagers("", "New Website Lead",
		fmt.Sprintf("Lead %s arrived from the website", l.Name),
		entity.NotificationLead, "lead", l.ID)

	return ToLeadResponse(l), nil
}

// CreateFromEmbed captura pública desde el widget de un shortcode. La
// actividad se registra a nombre del dueño del shortcode.
func (uc *LeadUseCase) CreateFromEmbed(ownerID, shortcodeName string, in dto.EmbedLeadRequest) (*dto.LeadResponse, error) {
	now := time.Now().UTC()

	notes := fmt.Sprintf("Captured via widget %q", shortcodeName)
	if in.PropertyID != nil {
		if p, err := uc.properties.GetByID(*in.PropertyID); err == nil && p != nil {
			notes += fmt.Sprintf("\nInterested in: %s (%s)", p.Title, p.Location)
		}
	}
	if in.Message != "" {
		notes += "\n" + in.Message
	}

	l := &entity.Lead{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Source:     entity.SourceEmbed,
		Stage:      entity.StageNew,
		PropertyID: in.PropertyID,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.leads.Create(l); err != nil {
		return nil, err
	}

	uc.activity.Record(ownerID, entity.ActivityLeadAdded,
		fmt.Sprintf("Lead %s captured via widget %s", l.Name, shortcodeName), "lead", l.ID,
		map[string]any{"shortcode": shortcodeName})
	uc.fanout.NotifyManagers("", "New Website Lead",
		fmt.Sprintf("Lead %s arrived from widget %s", l.Name, shortcodeName),
		entity.NotificationLead, "lead", l.ID)

	return ToLeadResponse(l), nil
}

// canManageAllLeads indica si el rol alcanza leads de cualquier asignado.
func canManageAllLeads(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleManager
}

// guardLeadAccess control por fila: los roles no privilegiados solo alcanzan
// leads asignados a ellos; con allowUnassigned también los que no tienen dueño.
func guardLeadAccess(actorID, role string, l *entity.Lead, allowUnassigned bool) error {
	if canManageAllLeads(role) {
		return nil
	}
	if l.AssignedEmployeeID == nil {
		if allowUnassigned {
			return nil
		}
		return domain.ErrForbidden
	}
	if *l.AssignedEmployeeID != actorID {
		return domain.ErrForbidden
	}
	return nil
}

// GetByID obtiene un lead. Los roles no privilegiados solo ven los suyos.
func (uc *LeadUseCase) GetByID(actorID, role, id string) (*dto.LeadResponse, error) {
	l, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if err := guardLeadAccess(actorID, role, l, false); err != nil {
		return nil, err
	}
	return ToLeadResponse(l), nil
}

// List lista leads. Los roles no privilegiados solo ven sus propios leads.
func (uc *LeadUseCase) List(actorID, role string, filter repository.LeadFilter) (*dto.LeadListResponse, error) {
	if !canManageAllLeads(role) {
		filter.AssignedEmployeeID = &actorID
	}
	leads, total, err := uc.leads.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, *ToLeadResponse(l))
	}
	return &dto.LeadListResponse{
		Leads: out,
		Meta:  dto.PageResponse{Page: filter.Page, PerPage: filter.PerPage, Total: total},
	}, nil
}

// Pipeline agrupa los leads por etapa en orden canónico.
func (uc *LeadUseCase) Pipeline(actorID, role string) (*dto.PipelineResponse, error) {
	filter := repository.LeadFilter{}
	if !canManageAllLeads(role) {
		filter.AssignedEmployeeID = &actorID
	}
	leads, _, err := uc.leads.List(filter)
	if err != nil {
		return nil, err
	}

	byStage := make(map[string][]dto.LeadResponse)
	for _, l := range leads {
		byStage[l.Stage] = append(byStage[l.Stage], *ToLeadResponse(l))
	}

	resp := &dto.PipelineResponse{Stages: make([]dto.PipelineStage, 0, len(entity.Stages))}
	for _, stage := range entity.Stages {
		group := byStage[stage]
		resp.Stages = append(resp.Stages, dto.PipelineStage{
			Stage: stage,
			Count: len(group),
			Leads: group,
		})
	}
	return resp, nil
}

// Stages devuelve las etapas del pipeline en orden canónico.
func (uc *LeadUseCase) Stages() []string {
	return entity.Stages
}

// Sources devuelve los orígenes de lead en uso.
func (uc *LeadUseCase) Sources() ([]string, error) {
	return uc.leads.DistinctSources()
}

// ListByProperty leads interesados en una propiedad.
func (uc *LeadUseCase) ListByProperty(propertyID string) ([]dto.LeadResponse, error) {
	leads, _, err := uc.leads.List(repository.LeadFilter{PropertyID: &propertyID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, *ToLeadResponse(l))
	}
	return out, nil
}

// Update aplica los campos presentes. Un nuevo seguimiento programa una
// comunicación follow_up y avisa al asignado; un cambio de etapa queda en el
// rastro de auditoría. Los roles no privilegiados solo editan sus propios
// leads o los que aún no tienen asignado, y no pueden reasignar.
func (uc *LeadUseCase) Update(actorID, role, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	l, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if err := guardLeadAccess(actorID, role, l, true); err != nil {
		return nil, err
	}

	oldStage := l.Stage
	oldFollowUp := l.NextFollowUp

	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Email != nil {
		l.Email = *in.Email
	}
	if in.Phone != nil {
		l.Phone = *in.Phone
	}
	if in.Source != nil {
		l.Source = *in.Source
	}
	if in.Stage != nil {
		l.Stage = *in.Stage
	}
	if in.PropertyID != nil {
		l.PropertyID = in.PropertyID
	}
	if in.AssignedEmployeeID != nil && canManageAllLeads(role) {
		l.AssignedEmployeeID = in.AssignedEmployeeID
	}
	if in.Budget != nil {
		l.Budget = in.Budget
	}
	if in.Notes != nil {
		l.Notes = *in.Notes
	}
	if in.LastContactDate != nil {
		l.LastContactDate = in.LastContactDate
	}
	if in.NextFollowUp != nil {
		l.NextFollowUp = in.NextFollowUp
	}
	l.UpdatedAt = time.Now().UTC()

	if err := uc.leads.Update(l); err != nil {
		return nil, err
	}

	if in.NextFollowUp != nil && (oldFollowUp == nil || !oldFollowUp.Equal(*in.NextFollowUp)) {
		uc.recordFollowUpScheduled(actorID, l)
	}
	if l.Stage != oldStage {
		uc.activity.Record(actorID, entity.ActivityLeadStageChanged,
			fmt.Sprintf("Moved lead %s from %s to %s", l.Name, oldStage, l.Stage), "lead", l.ID,
			map[string]any{"from": oldStage, "to": l.Stage})
	}

	return ToLeadResponse(l), nil
}

func (uc *LeadUseCase) recordFollowUpScheduled(actorID string, l *entity.Lead) {
	c := &entity.Communication{
		ID:        uuid.New().String(),
		LeadID:    l.ID,
		Type:      entity.CommFollowUp,
		Subject:   "Follow-up Scheduled",
		Content:   fmt.Sprintf("Follow-up scheduled for %s", l.NextFollowUp.Format("2006-01-02 15:04")),
		Direction: entity.DirectionOutbound,
		CreatedBy: &actorID,
		CreatedAt: time.Now().UTC(),
	}
	// Best-effort: la comunicación y el aviso no bloquean la actualización.
	_ = uc.comms.Create(c)

	if l.AssignedEmployeeID != nil {
		uc.fanout.NotifyUser(*l.AssignedEmployeeID, "Follow-up Reminder Set",
			fmt.Sprintf("Follow-up with %s scheduled for %s", l.Name, l.NextFollowUp.Format("2006-01-02 15:04")),
			entity.NotificationFollowUp, "lead", l.ID)
	}
}

// Delete elimina un lead y registra la actividad.
func (uc *LeadUseCase) Delete(actorID, id string) error {
	l, err := uc.leads.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	if err := uc.leads.Delete(id); err != nil {
		return err
	}

	uc.activity.Record(actorID, entity.ActivityLeadDeleted,
		fmt.Sprintf("Deleted lead %s", l.Name), "lead", id, nil)
	return nil
}

// AddCommunication registra una interacción y actualiza la fecha de último
// contacto. Solo el asignado (o un rol privilegiado) puede registrarla.
func (uc *LeadUseCase) AddCommunication(actorID, role, leadID string, in dto.CommunicationRequest) (*dto.CommunicationResponse, error) {
	l, err := uc.leads.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if err := guardLeadAccess(actorID, role, l, false); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	direction := in.Direction
	if direction == "" {
		direction = entity.DirectionOutbound
	}
	c := &entity.Communication{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Type:      in.Type,
		Subject:   in.Subject,
		Content:   in.Content,
		Direction: direction,
		CreatedBy: &actorID,
		CreatedAt: now,
	}
	if err := uc.comms.Create(c); err != nil {
		return nil, err
	}

	l.LastContactDate = &now
	l.UpdatedAt = now
	if err := uc.leads.Update(l); err != nil {
		return nil, err
	}

	uc.activity.Record(actorID, entity.ActivityCommAdded,
		fmt.Sprintf("Logged %s with lead %s", c.Type, l.Name), "lead", l.ID, nil)

	return &dto.CommunicationResponse{
		ID: c.ID, LeadID: c.LeadID, Type: c.Type, Subject: c.Subject,
		Content: c.Content, Direction: c.Direction, CreatedBy: c.CreatedBy, CreatedAt: c.CreatedAt,
	}, nil
}

// ListCommunications historial de interacciones de un lead, con el mismo
// control por fila que la lectura del lead.
func (uc *LeadUseCase) ListCommunications(actorID, role, leadID string) ([]dto.CommunicationResponse, error) {
	l, err := uc.leads.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if err := guardLeadAccess(actorID, role, l, false); err != nil {
		return nil, err
	}

	comms, err := uc.comms.ListByLead(leadID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommunicationResponse, 0, len(comms))
	for _, c := range comms {
		out = append(out, dto.CommunicationResponse{
			ID: c.ID, LeadID: c.LeadID, Type: c.Type, Subject: c.Subject,
			Content: c.Content, Direction: c.Direction, CreatedBy: c.CreatedBy, CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}
