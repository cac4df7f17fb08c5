package handler

import (
	"bytes"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/salenest/salenest-api/internal/domain"
	"github.com/salenest/salenest-api/internal/usecases/selling"
	"github.com/salenest/salenest-api/pkg/apiErrors"
	"github.com/salenest/salenest-api/pkg/log"
)

const (
	todaySegment = "today"
	rangeSegment = "range"
)

// createSaleRequest mantém os campos crus. Um valor de tipo errado precisa
// chegar às validações de carrinho, total e pagamento, nessa ordem, em vez
// de falhar na decodificação.
type createSaleRequest struct {
	Items         jsoniter.RawMessage `json:"items"`
	TotalAmount   jsoniter.RawMessage `json:"totalAmount"`
	PaymentMethod jsoniter.RawMessage `json:"paymentMethod"`
}

type createSaleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*domain.Sale
}

func (req createSaleRequest) toDomain() (domain.CreateSaleRequest, error) {
	out := domain.CreateSaleRequest{
		TotalAmount:   rawAmount(req.TotalAmount),
		PaymentMethod: domain.PaymentMethod(rawString(req.PaymentMethod)),
	}

	items := bytes.TrimSpace(req.Items)
	if len(items) > 0 && items[0] == '[' {
		if err := json.Unmarshal(items, &out.Items); err != nil {
			return out, err
		}
	}

	return out, nil
}

// rawAmount lê um número JSON ou texto numérico. Qualquer outra coisa vira 0,
// que a validação do total rejeita.
func rawAmount(raw jsoniter.RawMessage) float64 {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}

	var amount float64
	switch n := v.(type) {
	case float64:
		amount = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		amount = parsed
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// rawString lê um texto JSON, qualquer outra coisa vira vazio
func rawString(raw jsoniter.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}

	s, _ := v.(string)
	return s
}

func CreateSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Debug("sales: received sale request")

		var body createSaleRequest
		if err := decodeBody(r, &body); err != nil {
			logger.WithError(err).Warn("sales: invalid sale body")
			apiErrors.WriteFailure(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		req, err := body.toDomain()
		if err != nil {
			logger.WithError(err).Warn("sales: invalid sale items")
			apiErrors.WriteFailure(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		sale, err := service.CreateSale(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, selling.ErrEmptyCart):
				apiErrors.WriteFailure(w, apiErrors.ErrMissingRequiredData, "Cart is empty", nil)

			case errors.Is(err, selling.ErrInvalidTotalAmount):
				apiErrors.WriteFailure(w, apiErrors.ErrInvalidFormat, "Invalid total amount", nil)

			case errors.Is(err, selling.ErrInvalidPaymentMethod):
				apiErrors.WriteFailure(w, apiErrors.ErrInvalidFormat, "Invalid payment method. Must be Cash or UPI", nil)

			default:
				logger.WithError(err).Error("sales: error creating sale")
				code, details := apiErrors.ErrInternalServer, err.Error()

				var saleErr *selling.SaleError
				if errors.As(err, &saleErr) {
					code, details = saleErr.Code, saleErr.Details
				}
				apiErrors.WriteFailure(w, code, "Failed to create sale", details)
			}
			return
		}

		writeJSON(w, r, http.StatusCreated, createSaleResponse{
			Success: true,
			Message: "Sale created successfully",
			Sale:    sale,
		})
	})
}

func ListSales(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sales: error fetching sales")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch sales", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, sales)
	})
}

func TodaySales(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.TodaySales(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sales: error fetching today sales")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch today sales", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func GetSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		sale, err := service.GetSale(r.Context(), id)
		if err != nil {
			if errors.Is(err, selling.ErrSaleNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Sale not found", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).WithField("sale_id", id).Error("sales: error fetching sale")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch sale", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	})
}

// SaleLookup atende /sales/:id, onde o id "today" é reservado ao resumo do
// dia. O httprouter não registra o segmento fixo ao lado do curinga.
func SaleLookup(service selling.SalesService) http.Handler {
	today := TodaySales(service)
	byID := GetSale(service)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("id") == todaySegment {
			today.ServeHTTP(w, r)
			return
		}
		byID.ServeHTTP(w, r)
	})
}

// SalesByDateRange atende /sales/range/:startDate/:endDate, registrada como
// /sales/:id/:startDate/:endDate pelo mesmo motivo de SaleLookup.
func SalesByDateRange(service selling.SalesService) http.Handler {
	notFound := NotFoundHandler()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		if params.ByName("id") != rangeSegment {
			notFound.ServeHTTP(w, r)
			return
		}

		startDate, endDate := params.ByName("startDate"), params.ByName("endDate")
		summary, err := service.SalesByDateRange(r.Context(), startDate, endDate)
		if err != nil {
			var saleErr *selling.SaleError
			if errors.Is(err, selling.ErrInvalidDateRange) && errors.As(err, &saleErr) {
				apiErrors.WriteError(w, saleErr.Code, "Invalid date range", saleErr.Details)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("sales: error fetching sales by range")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch sales", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}
