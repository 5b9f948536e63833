package models

// Transaction records are append-only audit facts. Nothing mutable points at
// them and nothing ever updates one.

type ReceivingTransaction struct {
	ID          string   `json:"id"`
	PONumber    string   `json:"poNumber"`
	ItemCode    string   `json:"itemCode"`
	Description string   `json:"description"`
	Qty         int      `json:"qty"`
	BinCode     string   `json:"binCode"`
	Lots        []BinLot `json:"lots,omitempty"`
	Serials     []string `json:"serials,omitempty"`
	Timestamp   string   `json:"timestamp"`
}

type CycleCountTransaction struct {
	ID          string `json:"id"`
	BinCode     string `json:"binCode"`
	ItemCode    string `json:"itemCode"`
	Description string `json:"description"`
	ExpectedQty int    `json:"expectedQty"`
	CountedQty  int    `json:"countedQty"`
	Variance    int    `json:"variance"`
	SessionID   string `json:"sessionId,omitempty"`
	Timestamp   string `json:"timestamp"`
}

type TransferTransaction struct {
	ID             string `json:"id"`
	ItemCode       string `json:"itemCode"`
	Description    string `json:"description"`
	SourceBin      string `json:"sourceBin"`
	DestinationBin string `json:"destinationBin"`
	Qty            int    `json:"qty"`
	Timestamp      string `json:"timestamp"`
}
