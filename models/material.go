package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialForm holds the three raw values exactly as the user typed them.
// Nothing is parsed or validated at this level.
type MaterialForm struct {
	// InitialMaterial is the amount of material available before consumption.
	InitialMaterial RawNumber `json:"initial_material"`

	// MaterialPerProduct is the amount of material one product consumes.
	MaterialPerProduct RawNumber `json:"material_per_product"`

	// MaterialUsed is the amount of material already consumed.
	MaterialUsed RawNumber `json:"material_used"`
}

// MaterialInput is a parsed [MaterialForm].
// All quantities share the same (unspecified) unit.
type MaterialInput struct {
	InitialMaterial    decimal.Decimal `json:"initial_material"`
	MaterialPerProduct decimal.Decimal `json:"material_per_product"`
	MaterialUsed       decimal.Decimal `json:"material_used"`
}

// Report is the derived result of one accounting computation.
// It is never persisted: every report can be recomputed from the stored inputs.
type Report struct {
	// RemainingMaterial is InitialMaterial minus MaterialUsed. May be negative.
	RemainingMaterial decimal.Decimal `json:"remaining_material"`

	// PossibleProducts is the number of whole products RemainingMaterial still
	// covers, truncated toward zero.
	PossibleProducts int64 `json:"possible_products"`

	// LowMaterialAlert is set when RemainingMaterial drops below the
	// low-material threshold.
	LowMaterialAlert bool `json:"low_material_alert"`
}

// MaterialRecord is one persisted submission of an account.
// Records are immutable and are listed in insertion order.
type MaterialRecord struct {
	// ID is the store-assigned identifier. It grows monotonically.
	ID int64 `json:"id"`

	// UserID references the owning account.
	UserID int64 `json:"-"`

	MaterialInput

	// CreatedAt is the moment the record was appended.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the MaterialRecord model.
func (r MaterialRecord) TableName() string {
	return "materials"
}

// Submission is the outcome of a successful submit: the stored record
// together with the report computed from it.
type Submission struct {
	Record MaterialRecord `json:"record"`
	Report Report         `json:"report"`
}
