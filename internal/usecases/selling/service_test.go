package selling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/salenest/salenest-api/infrastructure/repository/mocks"
	"github.com/salenest/salenest-api/internal/domain"
	"github.com/salenest/salenest-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testLocation = time.FixedZone("IST", 5*3600+1800)
	testNow      = time.Date(2024, 3, 10, 15, 42, 7, 123_456_789, testLocation)
)

func newTestService(t *testing.T) (*Service, *mocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(repo).(*Service)
	service.now = func() time.Time { return testNow }
	service.generateID = func() (string, error) { return "sale-1", nil }

	return service, repo
}

func teaCart() []domain.LineItem {
	return []domain.LineItem{{ID: "tea", ItemName: "Tea", ItemPrice: 20, Quantity: 2}}
}

func TestCreateSale(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	expected := &domain.Sale{
		ID:            "sale-1",
		Items:         teaCart(),
		TotalAmount:   40,
		PaymentMethod: domain.PaymentMethodCash,
		Date:          testNow.Truncate(time.Millisecond),
	}
	repo.EXPECT().Create(ctx, expected).Return(nil)

	sale, err := service.CreateSale(ctx, domain.CreateSaleRequest{
		Items:         teaCart(),
		TotalAmount:   40,
		PaymentMethod: domain.PaymentMethodCash,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, sale)
	assert.Equal(t, 123_000_000, sale.Date.Nanosecond())
}

func TestCreateSale_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.CreateSaleRequest
		wantErr error
	}{
		{
			name:    "nil cart",
			req:     domain.CreateSaleRequest{TotalAmount: 40, PaymentMethod: domain.PaymentMethodCash},
			wantErr: ErrEmptyCart,
		},
		{
			name:    "empty cart wins over every other problem",
			req:     domain.CreateSaleRequest{Items: []domain.LineItem{}, TotalAmount: -1, PaymentMethod: "Card"},
			wantErr: ErrEmptyCart,
		},
		{
			name:    "zero total",
			req:     domain.CreateSaleRequest{Items: teaCart(), PaymentMethod: domain.PaymentMethodUPI},
			wantErr: ErrInvalidTotalAmount,
		},
		{
			name:    "negative total wins over payment method",
			req:     domain.CreateSaleRequest{Items: teaCart(), TotalAmount: -40, PaymentMethod: "Card"},
			wantErr: ErrInvalidTotalAmount,
		},
		{
			name:    "card is not accepted",
			req:     domain.CreateSaleRequest{Items: teaCart(), TotalAmount: 40, PaymentMethod: "Card"},
			wantErr: ErrInvalidPaymentMethod,
		},
		{
			name:    "missing payment method",
			req:     domain.CreateSaleRequest{Items: teaCart(), TotalAmount: 40},
			wantErr: ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			sale, err := service.CreateSale(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, sale)
		})
	}
}

func TestCreateSale_StoreFailure(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := service.CreateSale(ctx, domain.CreateSaleRequest{
		Items:         teaCart(),
		TotalAmount:   40,
		PaymentMethod: domain.PaymentMethodUPI,
	})

	require.ErrorIs(t, err, ErrDatabaseOperation)
	var saleErr *SaleError
	require.ErrorAs(t, err, &saleErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, saleErr.Code)
	assert.Equal(t, "sale-1", saleErr.SaleID)
	assert.Equal(t, "disk full", saleErr.Details)
}

func TestListSales(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()
	stored := []*domain.Sale{{ID: "b"}, {ID: "a"}}

	repo.EXPECT().List(ctx).Return(stored, nil)

	sales, err := service.ListSales(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, sales)
}

func TestListSales_Empty(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return(nil, nil)

	sales, err := service.ListSales(ctx)

	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestListSales_StoreFailure(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return(nil, errors.New("timeout"))

	_, err := service.ListSales(ctx)

	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestTodaySales(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	start := time.Date(2024, 3, 10, 0, 0, 0, 0, testLocation)
	end := time.Date(2024, 3, 10, 23, 59, 59, 999_000_000, testLocation)
	repo.EXPECT().
		ListByDateRange(ctx, start, end).
		Return([]*domain.Sale{{ID: "b", TotalAmount: 35}, {ID: "a", TotalAmount: 40}}, nil)

	summary, err := service.TodaySales(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 75.0, summary.TotalRevenue)
	assert.Equal(t, "b", summary.Sales[0].ID)
}

func TestTodaySales_NoSales(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().ListByDateRange(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

	summary, err := service.TodaySales(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.NotNil(t, summary.Sales)
}

func TestGetSale(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()
	stored := &domain.Sale{ID: "sale-1", TotalAmount: 40}

	repo.EXPECT().GetByID(ctx, "sale-1").Return(stored, nil)

	sale, err := service.GetSale(ctx, "sale-1")

	require.NoError(t, err)
	assert.Equal(t, stored, sale)
}

func TestGetSale_NotFound(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

	_, err := service.GetSale(ctx, "missing")

	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestGetSale_StoreFailure(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "sale-1").Return(nil, errors.New("timeout"))

	_, err := service.GetSale(ctx, "sale-1")

	assert.ErrorIs(t, err, ErrDatabaseOperation)
	assert.NotErrorIs(t, err, ErrSaleNotFound)
}

func TestSalesByDateRange(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, testLocation)
	end := time.Date(2024, 3, 5, 23, 59, 59, 999_000_000, testLocation)
	repo.EXPECT().
		ListByDateRange(ctx, start, end).
		Return([]*domain.Sale{{ID: "a", TotalAmount: 12.5}, {ID: "b", TotalAmount: 7.5}}, nil)

	summary, err := service.SalesByDateRange(ctx, "2024-03-01", "2024-03-05")

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 20.0, summary.TotalRevenue)
}

func TestSalesByDateRange_SingleDay(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		ListByDateRange(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, start, end time.Time) ([]*domain.Sale, error) {
			assert.True(t, start.Before(end))
			return nil, nil
		})

	_, err := service.SalesByDateRange(ctx, "2024-03-01", "2024-03-01")
	assert.NoError(t, err)
}

func TestSalesByDateRange_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		details   string
	}{
		{name: "unparseable start", startDate: "yesterday", endDate: "2024-03-05", details: "startDate"},
		{name: "unparseable end", startDate: "2024-03-01", endDate: "soon", details: "endDate"},
		{name: "inverted", startDate: "2024-03-05", endDate: "2024-03-01", details: "must not be after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the store must never be queried
			service, _ := newTestService(t)

			_, err := service.SalesByDateRange(context.Background(), tt.startDate, tt.endDate)

			require.ErrorIs(t, err, ErrInvalidDateRange)
			var saleErr *SaleError
			require.ErrorAs(t, err, &saleErr)
			assert.Equal(t, apiErrors.ErrInvalidFormat, saleErr.Code)
			assert.Contains(t, saleErr.Details, tt.details)
		})
	}
}
