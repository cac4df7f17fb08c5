package selling

import (
	"context"
	"time"

	"github.com/salenest/salenest-api/infrastructure/repository"
	"github.com/salenest/salenest-api/internal/domain"
	"github.com/salenest/salenest-api/pkg/apiErrors"
	"github.com/salenest/salenest-api/pkg/log"
	"github.com/salenest/salenest-api/pkg/utils"
)

type SalesService interface {
	CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]*domain.Sale, error)
	TodaySales(ctx context.Context) (*domain.SalesSummary, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
	SalesByDateRange(ctx context.Context, startDate, endDate string) (*domain.SalesSummary, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	now        func() time.Time
	generateID func() (string, error)
}

func NewService(saleRepo repository.SaleRepository) SalesService {
	return &Service{
		saleRepo:   saleRepo,
		now:        time.Now,
		generateID: utils.GenerateID,
	}
}

// CreateSale valida carrinho, total e forma de pagamento, nessa ordem, e
// grava a venda com a data atual. O total é aceito como enviado.
func (s *Service) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error) {
	logger := log.ForContext(ctx)

	if len(req.Items) == 0 {
		logger.Warn("sales: validation error, cart is empty")
		return nil, ErrEmptyCart
	}

	if req.TotalAmount <= 0 {
		logger.WithField("total_amount", req.TotalAmount).Warn("sales: validation error, invalid total amount")
		return nil, ErrInvalidTotalAmount
	}

	if !req.PaymentMethod.Valid() {
		logger.WithField("payment_method", req.PaymentMethod).Warn("sales: validation error, invalid payment method")
		return nil, ErrInvalidPaymentMethod
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewSaleError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	// o banco guarda microssegundos, os clientes JSON milissegundos
	sale := &domain.Sale{
		ID:            id,
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Date:          s.now().Truncate(time.Millisecond),
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		logger.WithError(err).WithField("sale_id", sale.ID).Error("sales: failed to save sale")
		return nil, NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, sale.ID, err.Error())
	}

	logger.WithFields(log.Fields{
		"sale_id":      sale.ID,
		"total_amount": sale.TotalAmount,
	}).Info("sales: sale saved")

	return sale, nil
}

// ListSales retorna todas as vendas, da mais recente para a mais antiga
func (s *Service) ListSales(ctx context.Context) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if sales == nil {
		sales = make([]*domain.Sale, 0)
	}

	log.ForContext(ctx).WithField("count", len(sales)).Debug("sales: fetched sales")
	return sales, nil
}

// TodaySales resume as vendas do dia atual do servidor, em horário local
func (s *Service) TodaySales(ctx context.Context) (*domain.SalesSummary, error) {
	start, end := utils.DayBounds(s.now())

	summary, err := s.summarise(ctx, start, end)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"count":         summary.Count,
		"total_revenue": summary.TotalRevenue,
	}).Info("sales: today's sales")

	return summary, nil
}

func (s *Service) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if sale == nil {
		return nil, ErrSaleNotFound
	}

	return sale, nil
}

// SalesByDateRange resume as vendas com data em [startDate, endDate]. Os
// dois limites são validados antes da consulta, uma data final sem horário
// cobre o dia inteiro.
func (s *Service) SalesByDateRange(ctx context.Context, startDate, endDate string) (*domain.SalesSummary, error) {
	loc := s.now().Location()

	start, err := utils.ParseDateBoundary(startDate, false, loc)
	if err != nil {
		return nil, NewSaleError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, "startDate: "+err.Error())
	}

	end, err := utils.ParseDateBoundary(endDate, true, loc)
	if err != nil {
		return nil, NewSaleError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, "endDate: "+err.Error())
	}

	if start.After(end) {
		return nil, NewSaleError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, "startDate must not be after endDate")
	}

	return s.summarise(ctx, start, end)
}

func (s *Service) summarise(ctx context.Context, start, end time.Time) (*domain.SalesSummary, error) {
	sales, err := s.saleRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return domain.NewSalesSummary(sales), nil
}
