package analysis

import (
	"math"
	"math/cmplx"
)

// fft returns the discrete Fourier transform of a real sequence, zero-padded
// up to the next power of two so the radix-2 recursion always applies. The
// result length is the padded size.
func fft(data []float64) []complex128 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	buf := make([]complex128, n)
	for i, v := range data {
		buf[i] = complex(v, 0)
	}
	radix2(buf)
	return buf
}

// radix2 transforms x in place; len(x) is a power of two, which fft
// guarantees.
func radix2(x []complex128) {
	n := len(x)
	if n < 2 {
		return
	}
	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}
	radix2(even)
	radix2(odd)
	for k := 0; k < half; k++ {
		t := cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n)) * odd[k]
		x[k] = even[k] + t
		x[k+half] = even[k] - t
	}
}

// MomentumDensity returns the momentum-space probability density of a
// position-space state sampled with step h. The transform zero-pads to the
// next power of two; frequencies come back in FFT order over the positive
// half axis, and K holds the momentum value of each density sample
// (hbar = 1).
func MomentumDensity(psi []float64, h float64) (k, density []float64) {
	spec := fft(psi)
	n := len(spec)
	half := n / 2
	k = make([]float64, half)
	density = make([]float64, half)

	norm := 0.0
	for i := 0; i < half; i++ {
		k[i] = 2 * math.Pi * float64(i) / (float64(n) * h)
		a := cmplx.Abs(spec[i])
		density[i] = a * a
		norm += density[i]
	}
	if norm > 0 {
		for i := range density {
			density[i] /= norm
		}
	}
	return k, density
}
