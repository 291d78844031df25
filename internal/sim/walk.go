package sim

import (
	"fmt"
	"math/rand"

	"github.com/lunixtng/lunixmon/pkg/lunix"
)

// Walk parameters per metric, tuned to the ranges the real sensors report.
var walkParams = map[lunix.Metric]struct {
	min, max, step float64
	format         string
}{
	lunix.Battery:     {min: 2.80, max: 4.20, step: 0.01, format: "%.2f"},
	lunix.Temperature: {min: 15.0, max: 60.0, step: 0.4, format: "%.1f"},
	lunix.Light:       {min: 0, max: 1023, step: 25, format: "%.0f"},
}

// walk produces a bounded random walk of formatted sensor readings.
type walk struct {
	min, max, step float64
	value          float64
	format         string
	rng            *rand.Rand
}

// newWalk seeds a walk for the given metric at a random point in its range.
func newWalk(metric lunix.Metric, rng *rand.Rand) *walk {
	p := walkParams[metric]
	return &walk{
		min:    p.min,
		max:    p.max,
		step:   p.step,
		value:  p.min + rng.Float64()*(p.max-p.min),
		format: p.format,
		rng:    rng,
	}
}

// Next advances the walk one step and returns the formatted reading.
func (w *walk) Next() string {
	w.value += (w.rng.Float64()*2 - 1) * w.step
	if w.value < w.min {
		w.value = w.min
	}
	if w.value > w.max {
		w.value = w.max
	}
	return fmt.Sprintf(w.format, w.value)
}
