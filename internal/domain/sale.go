package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

// Valid informa se p é uma forma de pagamento aceita
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodUPI:
		return true
	}
	return false
}

// LineItem é uma cópia do Item feita no momento da venda. Mudanças
// posteriores no catálogo não a alcançam.
type LineItem struct {
	ID        string  `json:"id"`
	ItemName  string  `json:"itemName"`
	ItemPrice float64 `json:"itemPrice"`
	ItemImage string  `json:"itemImage,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Sale é o registro imutável de uma venda concluída
type Sale struct {
	ID            string        `json:"id"`
	Items         []LineItem    `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          time.Time     `json:"date"`
}

type CreateSaleRequest struct {
	Items         []LineItem    `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// SalesSummary agrega as vendas de um intervalo de datas
type SalesSummary struct {
	Sales        []*Sale `json:"sales"`
	TotalRevenue float64 `json:"totalRevenue"`
	Count        int     `json:"count"`
}

// NewSalesSummary soma os totais das vendas. Slice nil vira vazio para ser
// codificado como [].
func NewSalesSummary(sales []*Sale) *SalesSummary {
	if sales == nil {
		sales = make([]*Sale, 0)
	}

	summary := &SalesSummary{
		Sales: sales,
		Count: len(sales),
	}
	for _, sale := range sales {
		summary.TotalRevenue += sale.TotalAmount
	}

	return summary
}
