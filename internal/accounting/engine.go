package accounting

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/shopspring/decimal"
)

// LowMaterialThreshold is the remaining quantity below which a report raises
// the low-material alert. Equal to the threshold is not low.
const LowMaterialThreshold = 10

// Size limits of a parsed quantity, the same as the PostgreSQL NUMERIC type.
const (
	MaxIntegerDigits  = 131072
	MaxFractionDigits = 16383
)

// Field names as they appear in forms and JSON bodies.
const (
	FieldInitialMaterial    = "initial_material"
	FieldMaterialPerProduct = "material_per_product"
	FieldMaterialUsed       = "material_used"
)

var (
	lowMaterialThreshold = decimal.NewFromInt(LowMaterialThreshold)
	maxProducts          = decimal.NewFromInt(math.MaxInt64)
	minProducts          = decimal.NewFromInt(math.MinInt64)
)

// Compute derives the report for one submission:
//
//	remaining        = initial - used
//	possibleProducts = remaining / perProduct, truncated toward zero
//	lowAlert         = remaining < LowMaterialThreshold
//
// A negative remaining quantity is reported as is and yields a non-positive
// product count. perProduct must be strictly positive.
func Compute(in models.MaterialInput) (models.Report, error) {
	if !in.MaterialPerProduct.IsPositive() {
		return models.Report{}, ErrNonPositivePerProduct
	}

	remaining := in.InitialMaterial.Sub(in.MaterialUsed)

	// QuoRem with zero precision yields an integer quotient truncated toward zero.
	quotient, _ := remaining.QuoRem(in.MaterialPerProduct, 0)
	if quotient.GreaterThan(maxProducts) || quotient.LessThan(minProducts) {
		return models.Report{}, ErrProductsOutOfRange
	}

	return models.Report{
		RemainingMaterial: remaining,
		PossibleProducts:  quotient.IntPart(),
		LowMaterialAlert:  remaining.LessThan(lowMaterialThreshold),
	}, nil
}

// ParseInput parses the three raw form values. Surrounding whitespace is
// ignored. The first value that is not a finite real number, or that has more
// than [MaxIntegerDigits] digits before or [MaxFractionDigits] digits after the
// decimal point, fails the whole input with [ErrInvalidNumber] naming the field.
func ParseInput(form models.MaterialForm) (models.MaterialInput, error) {
	initial, err := parseField(FieldInitialMaterial, form.InitialMaterial)
	if err != nil {
		return models.MaterialInput{}, err
	}

	perProduct, err := parseField(FieldMaterialPerProduct, form.MaterialPerProduct)
	if err != nil {
		return models.MaterialInput{}, err
	}

	used, err := parseField(FieldMaterialUsed, form.MaterialUsed)
	if err != nil {
		return models.MaterialInput{}, err
	}

	return models.MaterialInput{
		InitialMaterial:    initial,
		MaterialPerProduct: perProduct,
		MaterialUsed:       used,
	}, nil
}

func parseField(field string, raw models.RawNumber) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw.String())
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is empty", ErrInvalidNumber, field)
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, field, value)
	}

	// an exponent like 1e200000000 is short to write but expensive to rescale
	if integerDigits(d) > MaxIntegerDigits || fractionDigits(d) > MaxFractionDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is out of range", ErrInvalidNumber, field)
	}

	return d, nil
}

func integerDigits(d decimal.Decimal) int {
	return d.NumDigits() + int(d.Exponent())
}

func fractionDigits(d decimal.Decimal) int {
	if exp := int(d.Exponent()); exp < 0 {
		return -exp
	}
	return 0
}
