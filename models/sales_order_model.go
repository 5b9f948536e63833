package models

// SalesOrder is the SAP-style outbound order. Picking against it is
// additive: DeliveredQty grows with every partial pick until RemainingQty
// reaches zero.
type SalesOrder struct {
	ID          string   `json:"id"`
	SONumber    string   `json:"soNumber"`
	Customer    string   `json:"customer"`
	CardCode    string   `json:"cardCode"`
	Items       []SOItem `json:"items"`
	Status      string   `json:"status"` // pending, picking, picked, shipped
	CreatedDate string   `json:"createdDate"`
	ShippedDate string   `json:"shippedDate,omitempty"`
}

type SOItem struct {
	LineNumber   int    `json:"LineNumber"`
	ItemCode     string `json:"ItemCode"`
	Description  string `json:"Description"`
	OrderedQty   int    `json:"OrderedQty"`
	DeliveredQty int    `json:"DeliveredQty"`
	RemainingQty int    `json:"RemainingQty"`
	BinCode      string `json:"BinCode,omitempty"`
}
