package regression

import "errors"

var (
	// ErrEmptyDataset indicates a fit was requested on zero points.
	ErrEmptyDataset = errors.New("regression: dataset has no points")
	// ErrLengthMismatch indicates x and y columns of different lengths.
	ErrLengthMismatch = errors.New("regression: x and y must have the same length")
	// ErrDegenerateDataset indicates zero variance in x, which leaves the slope undefined.
	ErrDegenerateDataset = errors.New("regression: all x values are identical, best fit is undefined")
)

// ErrDiverged is returned by GradientDescent when the loss stops being finite.
var ErrDiverged = errors.New("regression: gradient descent diverged, lower the learning rate")
