package accounting

import "errors"

var (
	ErrInvalidNumber         = errors.New("value is not a valid number")
	ErrNonPositivePerProduct = errors.New("material per product must be greater than zero")
	ErrProductsOutOfRange    = errors.New("possible products count does not fit into int64")
)
