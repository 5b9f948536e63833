package models

type CycleCount struct {
	ID          string `json:"id"`
	BinCode     string `json:"BinCode"`
	ItemCode    string `json:"ItemCode"`
	ExpectedQty int    `json:"ExpectedQty"`
	CountedQty  *int   `json:"CountedQty,omitempty"`
	Variance    *int   `json:"Variance,omitempty"`
	CountDate   string `json:"CountDate,omitempty"`
	Status      string `json:"Status"` // pending, counted, completed
}
