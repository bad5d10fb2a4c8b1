package field

import "errors"

// Loader and construction errors. All of them abort a run before the
// simulation starts.
var (
	// ErrAxisOrder indicates a coordinate axis that is not strictly increasing.
	ErrAxisOrder = errors.New("field: coordinate axis not strictly increasing")

	// ErrMissingVariable indicates a netCDF variable absent from the input file.
	ErrMissingVariable = errors.New("field: variable not found in input file")

	// ErrShape indicates a variable whose dimensions do not match the grid.
	ErrShape = errors.New("field: variable shape does not match grid")

	// ErrVariableType indicates a variable stored in an unsupported type.
	ErrVariableType = errors.New("field: variable is neither float32 nor float64")
)
