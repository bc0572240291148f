package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

func newLeadUC(leads *fkLeads, props *fkProps, comms *fkComms, notifs *fkNotifs, users *fkUsers, acts *fkActs) *usecase.LeadUseCase {
	return usecase.NewLeadUseCase(leads, comms, props, testFanout(notifs, users), testActivity(acts))
}

func TestLeadCreate_AvisaAlAsignadoYDifundeSinElActor(t *testing.T) {
	leads := newFkLeads()
	notifs := &fkNotifs{}
	acts := &fkActs{}
	// El actor m1 es manager: no debe recibir su propia difusión.
	users := newFkUsers(mgr("m1"), mgr("m2"))
	uc := newLeadUC(leads, newFkProps(), &fkComms{}, notifs, users, acts)

	assignee := "emp9"
	out, err := uc.Create("m1", dto.CreateLeadRequest{Name: "Ana Gómez", AssignedEmployeeID: &assignee})
	require.NoError(t, err)
	assert.Equal(t, entity.StageNew, out.Stage, "sin etapa explícita el lead entra en new")
	assert.Equal(t, "manual", out.Source)

	assigned := notifs.byTitle("New Lead Assigned")
	require.Len(t, assigned, 1)
	assert.Equal(t, "emp9", assigned[0].UserID)
	assert.Equal(t, entity.NotificationLead, assigned[0].Type)

	broadcast := notifs.byTitle("New Lead Created")
	require.Len(t, broadcast, 1, "la difusión excluye al actor")
	assert.Equal(t, "m2", broadcast[0].UserID)

	assert.Len(t, acts.byType(entity.ActivityLeadAdded), 1)
}

func TestLeadCreate_AsignadoEsElActor_NoSeAutoNotifica(t *testing.T) {
	notifs := &fkNotifs{}
	users := newFkUsers(mgr("m1"))
	uc := newLeadUC(newFkLeads(), newFkProps(), &fkComms{}, notifs, users, &fkActs{})

	actor := "m1"
	_, err := uc.Create(actor, dto.CreateLeadRequest{Name: "Ana", AssignedEmployeeID: &actor})
	require.NoError(t, err)

	assert.Empty(t, notifs.byTitle("New Lead Assigned"),
		"quien se asigna un lead a sí mismo no necesita el aviso")
}

func TestLeadCreateFromWebsite_DifundeATodosLosManagers(t *testing.T) {
	notifs := &fkNotifs{}
	users := newFkUsers(mgr("m1"), mgr("m2"))
	uc := newLeadUC(newFkLeads(), newFkProps(), &fkComms{}, notifs, users, &fkActs{})

	out, err := uc.CreateFromWebsite(dto.WebsiteFormRequest{Name: "Visitante Web"})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceWebsite, out.Source)
	assert.Equal(t, entity.StageNew, out.Stage)

	broadcast := notifs.byTitle("New Website Lead")
	assert.Len(t, broadcast, 2, "sin actor autenticado nadie queda excluido")
}

func TestLeadCreateFromEmbed_RegistraActividadComoElDueno(t *testing.T) {
	prop := &entity.Property{ID: "p1", Title: "Casa Centro", Location: "centro"}
	notifs := &fkNotifs{}
	acts := &fkActs{}
	users := newFkUsers(mgr("m1"))
	uc := newLeadUC(newFkLeads(), newFkProps(prop), &fkComms{}, notifs, users, acts)

	propID := "p1"
	out, err := uc.CreateFromEmbed("owner7", "Destacadas", dto.EmbedLeadRequest{
		Name:       "Contacto Widget",
		Message:    "Quiero más información",
		PropertyID: &propID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceEmbed, out.Source)
	assert.Contains(t, out.Notes, "Casa Centro", "las notas incluyen la propiedad de interés")
	assert.Contains(t, out.Notes, "Quiero más información")

	added := acts.byType(entity.ActivityLeadAdded)
	require.Len(t, added, 1)
	assert.Equal(t, "owner7", added[0].UserID, "la captura pública se audita a nombre del dueño del shortcode")

	assert.Len(t, notifs.byTitle("New Website Lead"), 1)
}

func TestLeadUpdate_NuevoSeguimiento_ProgramaComunicacionYAviso(t *testing.T) {
	assignee := "emp3"
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageContacted, AssignedEmployeeID: &assignee}
	leads := newFkLeads(lead)
	comms := &fkComms{}
	notifs := &fkNotifs{}
	uc := newLeadUC(leads, newFkProps(), comms, notifs, newFkUsers(), &fkActs{})

	next := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	_, err := uc.Update("actor1", entity.RoleManager, "l1", dto.UpdateLeadRequest{NextFollowUp: &next})
	require.NoError(t, err)

	require.Len(t, comms.created, 1)
	c := comms.created[0]
	assert.Equal(t, entity.CommFollowUp, c.Type)
	assert.Equal(t, "Follow-up Scheduled", c.Subject)
	assert.Equal(t, entity.DirectionOutbound, c.Direction)

	reminders := notifs.byTitle("Follow-up Reminder Set")
	require.Len(t, reminders, 1)
	assert.Equal(t, "emp3", reminders[0].UserID)
	assert.Equal(t, entity.NotificationFollowUp, reminders[0].Type)
}

func TestLeadUpdate_MismoSeguimiento_NoReprograma(t *testing.T) {
	next := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageContacted, NextFollowUp: &next}
	comms := &fkComms{}
	uc := newLeadUC(newFkLeads(lead), newFkProps(), comms, &fkNotifs{}, newFkUsers(), &fkActs{})

	same := next
	_, err := uc.Update("actor1", entity.RoleManager, "l1", dto.UpdateLeadRequest{NextFollowUp: &same})
	require.NoError(t, err)
	assert.Empty(t, comms.created, "reenviar la misma fecha no debe duplicar la comunicación")
}

func TestLeadUpdate_CambioDeEtapa_QuedaEnAuditoria(t *testing.T) {
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageNew}
	acts := &fkActs{}
	uc := newLeadUC(newFkLeads(lead), newFkProps(), &fkComms{}, &fkNotifs{}, newFkUsers(), acts)

	stage := entity.StageNegotiation
	_, err := uc.Update("actor1", entity.RoleManager, "l1", dto.UpdateLeadRequest{Stage: &stage})
	require.NoError(t, err)

	changed := acts.byType(entity.ActivityLeadStageChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, entity.StageNew, changed[0].Metadata["from"])
	assert.Equal(t, entity.StageNegotiation, changed[0].Metadata["to"])
}

func TestLeadList_RolNoPrivilegiadoSoloVeSusLeads(t *testing.T) {
	leads := newFkLeads()
	uc := newLeadUC(leads, newFkProps(), &fkComms{}, &fkNotifs{}, newFkUsers(), &fkActs{})

	_, err := uc.List("agente1", entity.RoleSalesAgent, repository.LeadFilter{})
	require.NoError(t, err)
	require.NotNil(t, leads.lastFilter.AssignedEmployeeID)
	assert.Equal(t, "agente1", *leads.lastFilter.AssignedEmployeeID,
		"sales_agent queda limitado a sus propios leads")

	_, err = uc.List("admin1", entity.RoleAdmin, repository.LeadFilter{})
	require.NoError(t, err)
	assert.Nil(t, leads.lastFilter.AssignedEmployeeID, "admin ve todos los leads")
}

func TestLeadAddCommunication_ActualizaUltimoContacto(t *testing.T) {
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageContacted}
	leads := newFkLeads(lead)
	comms := &fkComms{}
	uc := newLeadUC(leads, newFkProps(), comms, &fkNotifs{}, newFkUsers(), &fkActs{})

	out, err := uc.AddCommunication("actor1", entity.RoleManager, "l1", dto.CommunicationRequest{
		Type:    "call",
		Content: "Llamada de seguimiento",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionOutbound, out.Direction, "sin dirección explícita se asume outbound")

	stored, _ := leads.GetByID("l1")
	assert.NotNil(t, stored.LastContactDate, "cada interacción actualiza la fecha de último contacto")
}

func TestLeadGetByID_RolNoPrivilegiadoSoloVeLosSuyos(t *testing.T) {
	assignee := "emp-otro"
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageNew, AssignedEmployeeID: &assignee}
	uc := newLeadUC(newFkLeads(lead), newFkProps(), &fkComms{}, &fkNotifs{}, newFkUsers(), &fkActs{})

	_, err := uc.GetByID("emp-intruso", entity.RoleSalesAgent, "l1")
	assert.ErrorIs(t, err, domain.ErrForbidden, "el lead de otro empleado no es visible")

	out, err := uc.GetByID("emp-otro", entity.RoleSalesAgent, "l1")
	require.NoError(t, err)
	assert.Equal(t, "l1", out.ID)

	_, err = uc.GetByID("m1", entity.RoleManager, "l1")
	assert.NoError(t, err, "manager ve cualquier lead")
}

func TestLeadUpdate_LeadAjenoEsForbidden(t *testing.T) {
	assignee := "emp-otro"
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageNegotiation, AssignedEmployeeID: &assignee}
	leads := newFkLeads(lead)
	uc := newLeadUC(leads, newFkProps(), &fkComms{}, &fkNotifs{}, newFkUsers(), &fkActs{})

	intruso := "emp-intruso"
	stage := entity.StageClosedLost
	_, err := uc.Update("emp-intruso", entity.RoleSalesAgent, "l1", dto.UpdateLeadRequest{
		Stage:              &stage,
		AssignedEmployeeID: &intruso,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := leads.GetByID("l1")
	assert.Equal(t, entity.StageNegotiation, stored.Stage, "el lead queda intacto")
	assert.Equal(t, "emp-otro", *stored.AssignedEmployeeID)
}

func TestLeadUpdate_SinAsignarEsEditablePeroNoReasignable(t *testing.T) {
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageNew}
	leads := newFkLeads(lead)
	uc := newLeadUC(leads, newFkProps(), &fkComms{}, &fkNotifs{}, newFkUsers(), &fkActs{})

	agente := "agente1"
	notes := "Contactado por teléfono"
	out, err := uc.Update("agente1", entity.RoleSalesAgent, "l1", dto.UpdateLeadRequest{
		Notes:              &notes,
		AssignedEmployeeID: &agente,
	})
	require.NoError(t, err, "un lead sin dueño sigue siendo trabajable por cualquier agente")
	assert.Equal(t, "Contactado por teléfono", out.Notes)
	assert.Nil(t, out.AssignedEmployeeID, "solo admin y manager reasignan leads")
}

func TestLeadUpdate_ManagerPuedeReasignar(t *testing.T) {
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageNew}
	uc := newLeadUC(newFkLeads(lead), newFkProps(), &fkComms{}, &fkNotifs{}, newFkUsers(), &fkActs{})

	assignee := "emp3"
	out, err := uc.Update("m1", entity.RoleManager, "l1", dto.UpdateLeadRequest{AssignedEmployeeID: &assignee})
	require.NoError(t, err)
	require.NotNil(t, out.AssignedEmployeeID)
	assert.Equal(t, "emp3", *out.AssignedEmployeeID)
}

func TestLeadComunicaciones_RequierenSerElAsignado(t *testing.T) {
	assignee := "emp-otro"
	lead := &entity.Lead{ID: "l1", Name: "Carlos", Stage: entity.StageContacted, AssignedEmployeeID: &assignee}
	uc := newLeadUC(newFkLeads(lead), newFkProps(), &fkComms{}, &fkNotifs{}, newFkUsers(), &fkActs{})

	_, err := uc.AddCommunication("emp-intruso", entity.RoleSalesAgent, "l1", dto.CommunicationRequest{
		Type: "call", Content: "hola",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListCommunications("emp-intruso", entity.RoleSalesAgent, "l1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListCommunications("emp-otro", entity.RoleSalesAgent, "l1")
	assert.NoError(t, err, "el asignado sí accede a su historial")
}
