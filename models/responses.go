package models

// HistoryResponse is the body of GET /api/materials.
type HistoryResponse struct {
	// Records lists every material record of the user in insertion order.
	// It is an empty array, never null, when nothing was submitted yet.
	Records []MaterialRecord `json:"records"`

	// Length is the total number of entries in Records.
	Length int `json:"length"`
}
