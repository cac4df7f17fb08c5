package selling

import (
	"errors"
	"fmt"
)

var (
	// validação
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidTotalAmount   = errors.New("invalid total amount")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidDateRange     = errors.New("invalid date range")

	// busca
	ErrSaleNotFound = errors.New("sale not found")

	// banco
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating sale id")
)

// SaleError carrega o código da API e os detalhes de uma operação de venda que falhou
type SaleError struct {
	Err     error
	Code    string
	SaleID  string
	Details string
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSaleErrorWithID(err error, code string, saleID string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}
