package domain

// Item é um produto do catálogo
type Item struct {
	ID        string  `json:"id"`
	ItemImage string  `json:"itemImage,omitempty"`
	ItemName  string  `json:"itemName"`
	ItemPrice float64 `json:"itemPrice"`
}

// ItemInput carrega os campos graváveis de um Item, tanto na criação quanto
// na substituição completa
type ItemInput struct {
	ItemImage string  `json:"itemImage"`
	ItemName  string  `json:"itemName"`
	ItemPrice float64 `json:"itemPrice"`
}
