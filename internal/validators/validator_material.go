package validators

import (
	"context"

	"github.com/MKhiriev/go-material-keeper/models"
)

const (
	FieldUserID             = "user_id"
	FieldInitialMaterial    = "initial_material"
	FieldMaterialPerProduct = "material_per_product"
	FieldMaterialUsed       = "material_used"
)

type MaterialValidator struct {
}

func NewMaterialValidator() Validator {
	return &MaterialValidator{}
}

func (v *MaterialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MaterialRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.MaterialRecord:
		return v.validateRecord(ctx, *value, fields...)

	case models.MaterialInput:
		return v.validateInput(ctx, value, fields...)
	case *models.MaterialInput:
		return v.validateInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MaterialValidator) validateRecord(ctx context.Context, record models.MaterialRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldInitialMaterial, FieldMaterialPerProduct, FieldMaterialUsed}
	}

	var inputFields []string
	for _, f := range fields {
		if f == FieldUserID {
			if record.UserID <= 0 {
				return ErrInvalidUserID
			}
			continue
		}
		inputFields = append(inputFields, f)
	}

	if len(inputFields) == 0 {
		return nil
	}

	return v.validateInput(ctx, record.MaterialInput, inputFields...)
}

func (v *MaterialValidator) validateInput(_ context.Context, input models.MaterialInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInitialMaterial, FieldMaterialPerProduct, FieldMaterialUsed}
	}

	for _, f := range fields {
		switch f {
		case FieldInitialMaterial:
			if input.InitialMaterial.IsNegative() {
				return ErrNegativeInitialMaterial
			}
		case FieldMaterialPerProduct:
			if !input.MaterialPerProduct.IsPositive() {
				return ErrNonPositiveMaterialPerProduct
			}
		case FieldMaterialUsed:
			if input.MaterialUsed.IsNegative() {
				return ErrNegativeMaterialUsed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
