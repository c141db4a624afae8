// SPDX-License-Identifier: MIT

package summary

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates a sample with zero elements.
var ErrEmptyInput = errors.New("summary: empty input")

// MStats holds the mean and standard deviation of a scalar sample.
type MStats struct {
	Mean float64
	Std  float64
}

// String renders MStats on one line.
func (m MStats) String() string {
	return fmt.Sprintf("mean: %g, std: %g", m.Mean, m.Std)
}

// Med holds the order statistics of a scalar sample.
type Med struct {
	LowerQuartile float64
	Median        float64
	UpperQuartile float64
}

// String renders Med on one line.
func (m Med) String() string {
	return fmt.Sprintf("lq: %g, median: %g, uq: %g", m.LowerQuartile, m.Median, m.UpperQuartile)
}
