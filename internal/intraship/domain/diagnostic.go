package domain

const DiagnosticLegacySingleItem = "deprecated_single_item"

// Diagnostic is a non-fatal note produced while building a shipment. The
// caller decides whether and where to report it.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
