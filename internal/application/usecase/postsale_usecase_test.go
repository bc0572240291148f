package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
)

type postSaleEnv struct {
	uc        *usecase.PostSaleUseCase
	leads     *fkLeads
	props     *fkProps
	postSales *fkPostSales
	payments  *fkPayments
	notifs    *fkNotifs
	acts      *fkActs
}

func newPostSaleEnv(leads *fkLeads, props *fkProps, sales *fkPostSales, payments *fkPayments) *postSaleEnv {
	notifs := &fkNotifs{}
	acts := &fkActs{}
	users := newFkUsers(mgr("m1"), mgr("m2"))
	return &postSaleEnv{
		uc: usecase.NewPostSaleUseCase(sales, payments, newFkTickets(), leads, props,
			testFanout(notifs, users), testActivity(acts)),
		leads: leads, props: props, postSales: sales, payments: payments,
		notifs: notifs, acts: acts,
	}
}

func wonLead(id, propertyID string) *entity.Lead {
	return &entity.Lead{ID: id, Name: "Cliente Feliz", Stage: entity.StageClosedWon, PropertyID: &propertyID}
}

func TestPostSaleCreate_RequiereLeadGanado(t *testing.T) {
	lead := &entity.Lead{ID: "l1", Name: "Aún Negociando", Stage: entity.StageNegotiation}
	env := newPostSaleEnv(newFkLeads(lead), newFkProps(), newFkPostSales(), newFkPayments())

	_, err := env.uc.Create("actor1", dto.CreatePostSaleRequest{
		LeadID:    "l1",
		SalePrice: decimal.NewFromInt(100000),
	})
	assert.ErrorIs(t, err, domain.ErrLeadNotClosedWon)
}

func TestPostSaleCreate_UnaPorLead(t *testing.T) {
	lead := wonLead("l1", "p1")
	existing := &entity.PostSale{ID: "ps0", LeadID: "l1", PropertyID: "p1"}
	env := newPostSaleEnv(newFkLeads(lead), newFkProps(), newFkPostSales(existing), newFkPayments())

	_, err := env.uc.Create("actor1", dto.CreatePostSaleRequest{
		LeadID:    "l1",
		SalePrice: decimal.NewFromInt(100000),
	})
	assert.ErrorIs(t, err, domain.ErrPostSaleExists)
}

func TestPostSaleCreate_LeadSinPropiedad(t *testing.T) {
	lead := &entity.Lead{ID: "l1", Name: "Sin Propiedad", Stage: entity.StageClosedWon}
	env := newPostSaleEnv(newFkLeads(lead), newFkProps(), newFkPostSales(), newFkPayments())

	_, err := env.uc.Create("actor1", dto.CreatePostSaleRequest{
		LeadID:    "l1",
		SalePrice: decimal.NewFromInt(100000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPostSaleCreate_MarcaPropiedadVendidaYDifunde(t *testing.T) {
	prop := &entity.Property{ID: "p1", Title: "Casa Centro", Status: entity.PropertyAvailable}
	env := newPostSaleEnv(newFkLeads(wonLead("l1", "p1")), newFkProps(prop), newFkPostSales(), newFkPayments())

	out, err := env.uc.Create("actor1", dto.CreatePostSaleRequest{
		LeadID:    "l1",
		SalePrice: decimal.NewFromInt(250000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, out.PaymentStatus)
	assert.Equal(t, "p1", out.PropertyID)

	stored, _ := env.props.GetByID("p1")
	assert.Equal(t, entity.PropertySold, stored.Status, "cerrar la venta marca la propiedad como vendida")

	sold := env.notifs.byTitle("Sale Completed")
	require.Len(t, sold, 2, "todos los managers reciben el aviso de venta")
	assert.Equal(t, entity.NotificationPayment, sold[0].Type)

	assert.Len(t, env.acts.byType(entity.ActivitySaleCompleted), 1)
}

func TestAddPayment_EstadoPorDefectoYAviso(t *testing.T) {
	sale := &entity.PostSale{ID: "ps1", LeadID: "l1", PropertyID: "p1",
		SalePrice: decimal.NewFromInt(100000), PaymentStatus: entity.PaymentStatusPending}
	env := newPostSaleEnv(newFkLeads(), newFkProps(), newFkPostSales(sale), newFkPayments())

	out, err := env.uc.AddPayment("actor1", "ps1", dto.PaymentRequest{
		PaymentType: "down_payment",
		Amount:      decimal.NewFromInt(20000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, out.Status, "sin estado explícito el pago queda pending")

	assert.Len(t, env.notifs.byTitle("Payment Added"), 2)
	assert.Len(t, env.acts.byType(entity.ActivityPaymentAdded), 1)
}

func TestAddPayment_PagoPagadoRecalculaElAgregado(t *testing.T) {
	sale := &entity.PostSale{ID: "ps1", LeadID: "l1", PropertyID: "p1",
		SalePrice: decimal.NewFromInt(100000), PaymentStatus: entity.PaymentStatusPending}
	env := newPostSaleEnv(newFkLeads(), newFkProps(), newFkPostSales(sale), newFkPayments())

	_, err := env.uc.AddPayment("actor1", "ps1", dto.PaymentRequest{
		PaymentType: "down_payment",
		Amount:      decimal.NewFromInt(40000),
		Status:      entity.PaymentPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPartial, sale.PaymentStatus,
		"un pago parcial pagado mueve el agregado a partial")

	_, err = env.uc.AddPayment("actor1", "ps1", dto.PaymentRequest{
		PaymentType: "final_payment",
		Amount:      decimal.NewFromInt(60000),
		Status:      entity.PaymentPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, sale.PaymentStatus,
		"cubrir el precio de venta completa el agregado")
}

func TestUpdatePayment_AvisaSoloEnLaTransicionAPagado(t *testing.T) {
	sale := &entity.PostSale{ID: "ps1", LeadID: "l1", PropertyID: "p1",
		SalePrice: decimal.NewFromInt(100000), PaymentStatus: entity.PaymentStatusPending}
	payment := &entity.Payment{ID: "pay1", PostSaleID: "ps1",
		PaymentType: "installment", Amount: decimal.NewFromInt(10000), Status: entity.PaymentPending}
	env := newPostSaleEnv(newFkLeads(), newFkProps(), newFkPostSales(sale), newFkPayments(payment))

	paid := entity.PaymentPaid
	now := time.Now().UTC()
	_, err := env.uc.UpdatePayment("ps1", "pay1", dto.UpdatePaymentRequest{Status: &paid, PaidDate: &now})
	require.NoError(t, err)
	assert.Len(t, env.notifs.byTitle("Payment Received"), 2,
		"la transición pending→paid difunde el aviso")

	// Editar un pago ya pagado no repite el aviso.
	notes := "referencia corregida"
	_, err = env.uc.UpdatePayment("ps1", "pay1", dto.UpdatePaymentRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Len(t, env.notifs.byTitle("Payment Received"), 2,
		"editar un pago ya pagado no vuelve a difundir")
}

func TestAddTicket_ValoresPorDefecto(t *testing.T) {
	sale := &entity.PostSale{ID: "ps1", LeadID: "l1", PropertyID: "p1",
		SalePrice: decimal.NewFromInt(100000), PaymentStatus: entity.PaymentStatusPending}
	env := newPostSaleEnv(newFkLeads(), newFkProps(), newFkPostSales(sale), newFkPayments())

	out, err := env.uc.AddTicket("ps1", dto.SupportTicketRequest{Title: "Gotera en el techo"})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketOpen, out.Status)
	assert.Equal(t, "medium", out.Priority)
}

func TestPostSaleCreate_LeadInexistente(t *testing.T) {
	env := newPostSaleEnv(newFkLeads(), newFkProps(), newFkPostSales(), newFkPayments())

	_, err := env.uc.Create("actor1", dto.CreatePostSaleRequest{
		LeadID:    "no-existe",
		SalePrice: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
