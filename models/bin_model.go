package models

type BinLocation struct {
	BinCode  string    `json:"BinCode"`
	Zone     string    `json:"Zone"`
	Items    []BinItem `json:"Items"`
	Capacity int       `json:"Capacity"`
	Status   string    `json:"Status"` // active, inactive
}

type BinItem struct {
	ItemCode    string   `json:"ItemCode"`
	Description string   `json:"Description"`
	Quantity    int      `json:"Quantity"`
	Lots        []BinLot `json:"Lots,omitempty"`
	Serials     []string `json:"Serials,omitempty"`
}

type BinLot struct {
	LotCode string `json:"lotCode"`
	Qty     int    `json:"qty"`
}
