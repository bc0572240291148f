package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/notify"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// PostSaleUseCase postventa: registro de venta, pagos e incidencias.
type PostSaleUseCase struct {
	postSales  repository.PostSaleRepository
	payments   repository.PaymentRepository
	tickets    repository.SupportTicketRepository
	leads      repository.LeadRepository
	properties repository.PropertyRepository
	fanout     *notify.Fanout
	activity   *activity.Logger
}

// NewPostSaleUseCase construye el caso de uso de postventa.
func NewPostSaleUseCase(postSales repository.PostSaleRepository, payments repository.PaymentRepository,
	tickets repository.SupportTicketRepository, leads repository.LeadRepository,
	properties repository.PropertyRepository, fanout *notify.Fanout, act *activity.Logger) *PostSaleUseCase {
	return &PostSaleUseCase{
		postSales: postSales, payments: payments, tickets: tickets,
		leads: leads, properties: properties, fanout: fanout, activity: act,
	}
}

func toPostSaleResponse(ps *entity.PostSale) *dto.PostSaleResponse {
	if ps == nil {
		return nil
	}
	return &dto.PostSaleResponse{
		ID:                ps.ID,
		LeadID:            ps.LeadID,
		PropertyID:        ps.PropertyID,
		SalePrice:         ps.SalePrice,
		SaleDate:          ps.SaleDate,
		PaymentStatus:     ps.PaymentStatus,
		Documents:         ps.Documents,
		HandoverDate:      ps.HandoverDate,
		PossessionDate:    ps.PossessionDate,
		WarrantyStartDate: ps.WarrantyStartDate,
		WarrantyEndDate:   ps.WarrantyEndDate,
		Notes:             ps.Notes,
		CreatedAt:         ps.CreatedAt,
		UpdatedAt:         ps.UpdatedAt,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:              p.ID,
		PostSaleID:      p.PostSaleID,
		PaymentType:     p.PaymentType,
		Amount:          p.Amount,
		DueDate:         p.DueDate,
		PaidDate:        p.PaidDate,
		PaymentMethod:   p.PaymentMethod,
		ReferenceNumber: p.ReferenceNumber,
		Status:          p.Status,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toTicketResponse(t *entity.SupportTicket) dto.SupportTicketResponse {
	return dto.SupportTicketResponse{
		ID:          t.ID,
		PostSaleID:  t.PostSaleID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		AssignedTo:  t.AssignedTo,
		Resolution:  t.Resolution,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// Create abre la postventa de un lead ganado: exige closed_won, un único
// registro por lead y marca la propiedad como vendida.
func (uc *PostSaleUseCase) Create(actorID string, in dto.CreatePostSaleRequest) (*dto.PostSaleResponse, error) {
	lead, err := uc.leads.GetByID(in.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if lead.Stage != entity.StageClosedWon {
		return nil, domain.ErrLeadNotClosedWon
	}
	if lead.PropertyID == nil {
		return nil, fmt.Errorf("%w: el lead no tiene propiedad asociada", domain.ErrInvalidInput)
	}

	existing, err := uc.postSales.GetByLeadID(in.LeadID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPostSaleExists
	}

	now := time.Now().UTC()
	saleDate := now
	if in.SaleDate != nil {
		saleDate = *in.SaleDate
	}
	ps := &entity.PostSale{
		ID:                uuid.New().String(),
		LeadID:            in.LeadID,
		PropertyID:        *lead.PropertyID,
		SalePrice:         in.SalePrice,
		SaleDate:          saleDate,
		PaymentStatus:     entity.PaymentStatusPending,
		Documents:         in.Documents,
		HandoverDate:      in.HandoverDate,
		PossessionDate:    in.PossessionDate,
		WarrantyStartDate: in.WarrantyStartDate,
		WarrantyEndDate:   in.WarrantyEndDate,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.postSales.Create(ps); err != nil {
		return nil, err
	}

	if prop, err := uc.properties.GetByID(ps.PropertyID); err == nil && prop != nil {
		prop.Status = entity.PropertySold
		prop.UpdatedAt = now
		_ = uc.properties.Update(prop)
	}

	uc.activity.Record(actorID, entity.ActivitySaleCompleted,
		fmt.Sprintf("Completed sale for lead %s", lead.Name), "post_sale", ps.ID,
		map[string]any{"sale_price": ps.SalePrice.String()})
	uc.fanout.NotifyManagers("", "Sale Completed",
		fmt.Sprintf("Property sold to %s for %s", lead.Name, ps.SalePrice.String()),
		entity.NotificationPayment, "post_sale", ps.ID)

	return toPostSaleResponse(ps), nil
}

// GetByID obtiene una postventa con sus pagos e incidencias.
func (uc *PostSaleUseCase) GetByID(id string) (*dto.PostSaleResponse, error) {
	ps, err := uc.postSales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, domain.ErrNotFound
	}

	resp := toPostSaleResponse(ps)

	payments, err := uc.payments.ListByPostSale(id)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(p))
	}

	tickets, err := uc.tickets.ListByPostSale(id)
	if err != nil {
		return nil, err
	}
	for _, t := range tickets {
		resp.Tickets = append(resp.Tickets, toTicketResponse(t))
	}
	return resp, nil
}

// List lista postventas con filtros y paginación.
func (uc *PostSaleUseCase) List(filter repository.PostSaleFilter) (*dto.PostSaleListResponse, error) {
	sales, total, err := uc.postSales.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostSaleResponse, 0, len(sales))
	for _, ps := range sales {
		out = append(out, *toPostSaleResponse(ps))
	}
	return &dto.PostSaleListResponse{
		PostSales: out,
		Meta:      dto.PageResponse{Page: filter.Page, PerPage: filter.PerPage, Total: total},
	}, nil
}

// Update actualiza una postventa; solo los campos presentes se aplican.
func (uc *PostSaleUseCase) Update(id string, in dto.UpdatePostSaleRequest) (*dto.PostSaleResponse, error) {
	ps, err := uc.postSales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, domain.ErrNotFound
	}

	if in.SalePrice != nil {
		ps.SalePrice = *in.SalePrice
	}
	if in.SaleDate != nil {
		ps.SaleDate = *in.SaleDate
	}
	if in.PaymentStatus != nil {
		ps.PaymentStatus = *in.PaymentStatus
	}
	if in.Documents != nil {
		ps.Documents = *in.Documents
	}
	if in.HandoverDate != nil {
		ps.HandoverDate = in.HandoverDate
	}
	if in.PossessionDate != nil {
		ps.PossessionDate = in.PossessionDate
	}
	if in.WarrantyStartDate != nil {
		ps.WarrantyStartDate = in.WarrantyStartDate
	}
	if in.WarrantyEndDate != nil {
		ps.WarrantyEndDate = in.WarrantyEndDate
	}
	if in.Notes != nil {
		ps.Notes = *in.Notes
	}
	ps.UpdatedAt = time.Now().UTC()

	if err := uc.postSales.Update(ps); err != nil {
		return nil, err
	}
	return toPostSaleResponse(ps), nil
}

// AddPayment registra un pago de la postventa y recalcula el estado agregado.
func (uc *PostSaleUseCase) AddPayment(actorID, postSaleID string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	ps, err := uc.postSales.GetByID(postSaleID)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = entity.PaymentPending
	}
	p := &entity.Payment{
		ID:              uuid.New().String(),
		PostSaleID:      postSaleID,
		PaymentType:     in.PaymentType,
		Amount:          in.Amount,
		DueDate:         in.DueDate,
		PaidDate:        in.PaidDate,
		PaymentMethod:   in.PaymentMethod,
		ReferenceNumber: in.ReferenceNumber,
		Status:          status,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.payments.Create(p); err != nil {
		return nil, err
	}

	uc.refreshPaymentStatus(ps)

	uc.activity.Record(actorID, entity.ActivityPaymentAdded,
		fmt.Sprintf("Added %s payment of %s", p.PaymentType, p.Amount.String()), "payment", p.ID, nil)
	uc.fanout.NotifyManagers("", "Payment Added",
		fmt.Sprintf("Payment of %s (%s) recorded", p.Amount.String(), p.PaymentType),
		entity.NotificationPayment, "payment", p.ID)

	resp := toPaymentResponse(p)
	return &resp, nil
}

// UpdatePayment actualiza un pago. "Payment Received" se difunde solo en la
// transición a paid, no en ediciones posteriores de un pago ya pagado.
func (uc *PostSaleUseCase) UpdatePayment(postSaleID, paymentID string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	ps, err := uc.postSales.GetByID(postSaleID)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.payments.GetByID(paymentID, postSaleID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	oldStatus := p.Status

	if in.PaymentType != nil {
		p.PaymentType = *in.PaymentType
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if in.DueDate != nil {
		p.DueDate = in.DueDate
	}
	if in.PaidDate != nil {
		p.PaidDate = in.PaidDate
	}
	if in.PaymentMethod != nil {
		p.PaymentMethod = *in.PaymentMethod
	}
	if in.ReferenceNumber != nil {
		p.ReferenceNumber = *in.ReferenceNumber
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.payments.Update(p); err != nil {
		return nil, err
	}

	uc.refreshPaymentStatus(ps)

	if oldStatus != entity.PaymentPaid && p.Status == entity.PaymentPaid {
		uc.fanout.NotifyManagers("", "Payment Received",
			fmt.Sprintf("Payment of %s (%s) was received", p.Amount.String(), p.PaymentType),
			entity.NotificationPayment, "payment", p.ID)
	}

	resp := toPaymentResponse(p)
	return &resp, nil
}

// refreshPaymentStatus recalcula el estado agregado de la postventa a partir
// de la suma de pagos pagados. Best-effort.
func (uc *PostSaleUseCase) refreshPaymentStatus(ps *entity.PostSale) {
	payments, err := uc.payments.ListByPostSale(ps.ID)
	if err != nil {
		return
	}
	paid := decimal.Zero
	for _, p := range payments {
		if p.Status == entity.PaymentPaid {
			paid = paid.Add(p.Amount)
		}
	}

	status := entity.PaymentStatusPending
	switch {
	case paid.GreaterThanOrEqual(ps.SalePrice) && paid.IsPositive():
		status = entity.PaymentStatusCompleted
	case paid.IsPositive():
		status = entity.PaymentStatusPartial
	}
	if status == ps.PaymentStatus {
		return
	}
	ps.PaymentStatus = status
	ps.UpdatedAt = time.Now().UTC()
	_ = uc.postSales.Update(ps)
}

// AddTicket abre una incidencia de la postventa.
func (uc *PostSaleUseCase) AddTicket(postSaleID string, in dto.SupportTicketRequest) (*dto.SupportTicketResponse, error) {
	ps, err := uc.postSales.GetByID(postSaleID)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	t := &entity.SupportTicket{
		ID:          uuid.New().String(),
		PostSaleID:  postSaleID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Status:      entity.TicketOpen,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tickets.Create(t); err != nil {
		return nil, err
	}
	resp := toTicketResponse(t)
	return &resp, nil
}

// UpdateTicket actualiza una incidencia; solo los campos presentes se aplican.
func (uc *PostSaleUseCase) UpdateTicket(postSaleID, ticketID string, in dto.UpdateSupportTicketRequest) (*dto.SupportTicketResponse, error) {
	t, err := uc.tickets.GetByID(ticketID, postSaleID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.AssignedTo != nil {
		t.AssignedTo = in.AssignedTo
	}
	if in.Resolution != nil {
		t.Resolution = *in.Resolution
	}
	t.UpdatedAt = time.Now().UTC()

	if err := uc.tickets.Update(t); err != nil {
		return nil, err
	}
	resp := toTicketResponse(t)
	return &resp, nil
}
