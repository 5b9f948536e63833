package models

// Item is one row of the imported inventory master: an item expected to be
// sitting in a bin. CountedQty and Variance stay nil until an operator
// actually counts the item.
type Item struct {
	BinCode     string `json:"BinCode"`
	ItemCode    string `json:"ItemCode"`
	Description string `json:"Description"`
	ExpectedQty int    `json:"ExpectedQty"`
	CountedQty  *int   `json:"CountedQty,omitempty"`
	Variance    *int   `json:"Variance,omitempty"`
}
