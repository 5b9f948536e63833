package models

type PurchaseOrder struct {
	ID           string   `json:"id"`
	PONumber     string   `json:"poNumber"`
	Vendor       string   `json:"vendor"`
	CardCode     string   `json:"cardCode,omitempty"`
	Items        []POItem `json:"items"`
	Status       string   `json:"status"` // pending, receiving, completed
	ExpectedDate string   `json:"expectedDate"`
	ReceivedDate string   `json:"receivedDate,omitempty"`
}

type POItem struct {
	LineNumber        int      `json:"LineNumber,omitempty"`
	ItemCode          string   `json:"ItemCode"`
	Description       string   `json:"Description"`
	OrderedQty        int      `json:"OrderedQty"`
	ReceivedQty       int      `json:"ReceivedQty"`
	RemainingQty      int      `json:"RemainingQty"`
	BinCode           string   `json:"BinCode,omitempty"`
	RequiresLotSerial bool     `json:"RequiresLotSerial,omitempty"`
	Lots              []POLot  `json:"Lots,omitempty"`
	Serials           []string `json:"Serials,omitempty"`
}

type POLot struct {
	LotCode string `json:"lotCode"`
	Qty     int    `json:"qty"`
	MfgDate string `json:"mfgDate,omitempty"`
	ExpDate string `json:"expDate,omitempty"`
}
