// Package summary compacts raw per-layer activation tensors into the small
// fixed-length vectors the visualization animates.
package summary

import (
	"github.com/openfluke/loom/nn"
)

const (
	// VectorLen is the number of visualized units per hidden layer summary.
	VectorLen = 16

	// maxFloor keeps the rescale divisor away from zero for all-quiet layers.
	maxFloor = 1e-4
)

// Tensor is a raw activation readout from one classifier layer. Shape is
// either (batch, units) for dense output or (batch, height, width, channels)
// for spatial feature maps.
type Tensor struct {
	Data  []float32
	Shape []int
}

// Flat reports whether the tensor is a plain (batch, units) vector.
func (t Tensor) Flat() bool { return len(t.Shape) <= 2 }

// Summarize reduces a layer tensor to a VectorLen-length vector in [0,1].
// Spatial tensors reduce each channel to its mean activation first; flat
// tensors are taken as-is. The result is truncated or zero-padded to
// VectorLen and rescaled by its own maximum so the strongest unit is exactly
// 1.0. Stateless: no history from prior calls affects scaling.
func Summarize(t Tensor) []float64 {
	var units []float32
	if t.Flat() {
		units = t.Data
	} else {
		units = channelMeans(t)
	}

	out := make([]float64, VectorLen)
	n := len(units)
	if n > VectorLen {
		n = VectorLen
	}

	peak := float64(maxFloor)
	for i := 0; i < n; i++ {
		if v := float64(units[i]); v > peak {
			peak = v
		}
	}
	for i := 0; i < n; i++ {
		v := float64(units[i]) / peak
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		out[i] = v
	}
	return out
}

// channelMeans collapses a (batch, h, w, c) tensor to one mean per channel.
// Only the first batch entry is visualized.
func channelMeans(t Tensor) []float32 {
	if len(t.Shape) < 4 {
		return t.Data
	}
	h, w, c := t.Shape[1], t.Shape[2], t.Shape[3]
	if h <= 0 || w <= 0 || c <= 0 {
		return nil
	}
	means := make([]float32, c)
	area := h * w
	for ch := 0; ch < c; ch++ {
		var sum float32
		for i := 0; i < area; i++ {
			idx := i*c + ch
			if idx < len(t.Data) {
				sum += t.Data[idx]
			}
		}
		means[ch] = sum / float32(area)
	}
	return means
}

// Peak returns the strongest raw unit of a tensor, a convenience for
// reporting. Delegates to the network library's reducer.
func Peak(t Tensor) float32 {
	if len(t.Data) == 0 {
		return 0
	}
	return nn.Max(t.Data)
}
