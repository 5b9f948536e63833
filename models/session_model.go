package models

// InventorySession groups count activity so an interrupted count can resume
// where it left off. It owns no inventory, only cycle count IDs.
type InventorySession struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	CreatedDate         string   `json:"createdDate"`
	LastAccessedDate    string   `json:"lastAccessedDate"`
	Status              string   `json:"status"` // active, paused, completed
	CycleCountIDs       []string `json:"cycleCountIds"`
	CurrentCycleCountID string   `json:"currentCycleCountId,omitempty"`
}

// TemporaryLocation is a scratch holding area for stock pulled out of a bin
// during counting. Quantities here are in transit and already subtracted
// from the source bin.
type TemporaryLocation struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	CreatedDate string                  `json:"createdDate"`
	Items       []TemporaryLocationItem `json:"items"`
}

type TemporaryLocationItem struct {
	ItemCode    string `json:"itemCode"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	SourceBin   string `json:"sourceBin,omitempty"`
	MovedDate   string `json:"movedDate"`
}
