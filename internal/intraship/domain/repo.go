package domain

import "time"

// RenderedRequest is the journal entry kept for every rendered shipment.
type RenderedRequest struct {
	ID                int64
	CustomerReference string
	ProductCode       ProductCode
	ServiceKinds      []string
	ItemCount         int
	Document          string
	CreatedAt         time.Time
}
