package models

// Order is the legacy wave-picking representation: one terminal PickedQty is
// recorded per line. SalesOrder (sales_order_model.go) is the incremental
// variant; the two are intentionally separate.
type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Customer    string      `json:"customer"`
	Items       []OrderItem `json:"items"`
	Status      string      `json:"status"` // pending, picking, picked, shipped
	WaveID      string      `json:"waveId,omitempty"`
	Priority    string      `json:"priority"` // normal, urgent
}

type OrderItem struct {
	ItemCode    string `json:"ItemCode"`
	Description string `json:"Description"`
	OrderedQty  int    `json:"OrderedQty"`
	PickedQty   int    `json:"PickedQty"`
	BinCode     string `json:"BinCode"`
}

// Wave groups orders for batch picking. It holds order IDs only; order
// lifecycle stays with the orders aggregate.
type Wave struct {
	ID            string   `json:"id"`
	WaveNumber    string   `json:"waveNumber"`
	Orders        []string `json:"orders"`
	Status        string   `json:"status"` // pending, active, completed
	CreatedDate   string   `json:"createdDate"`
	CompletedDate string   `json:"completedDate,omitempty"`
}
