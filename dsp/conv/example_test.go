package conv_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-numrs/dsp/conv"
)

func ExampleConvolve() {
	a := []float64{1, 2, 3}
	v := []float64{0, 1, 0.5}

	for _, mode := range []conv.Mode{conv.ModeFull, conv.ModeSame, conv.ModeValid} {
		out, _ := conv.Convolve(a, v, mode)
		fmt.Printf("%-5s %v\n", mode, out)
	}

	// Output:
	// full  [0 1 2.5 4 1.5]
	// same  [1 2.5 4]
	// valid [2.5]
}

func ExampleConvolve_integers() {
	out, _ := conv.Convolve([]int{1, 2, 3, 4}, []int{1, -1}, conv.ModeValid)
	fmt.Println(out)

	// Output:
	// [1 1 1]
}

func ExampleConvolveFFT() {
	// Create the processor once and reuse it for every call.
	proc := conv.NewFFTProcessor()
	kernel := []float64{0.25, 0.5, 0.25}

	for _, frame := range [][]float64{
		{1, 2, 3, 4, 5, 4, 3, 2, 1},
		{0, 0, 4, 0, 0, 0, 0, 0, 0},
	} {
		out, _ := conv.ConvolveFFT(frame, kernel, conv.ModeSame, proc)
		for i, x := range out {
			if math.Abs(x) < 1e-9 {
				x = 0 // FFT round-off
			}
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%.2f", x)
		}
		fmt.Println()
	}
	fmt.Println("plans:", proc.PlanCount())

	// Output:
	// 1.00 2.00 3.00 4.00 4.50 4.00 3.00 2.00 1.00
	// 0.00 1.00 2.00 1.00 0.00 0.00 0.00 0.00 0.00
	// plans: 1
}

func ExampleCorrelate() {
	// Find the position of a template in a signal
	signal := []float64{0, 0, 0, 1, 2, 3, 2, 1, 0, 0, 0}
	template := []float64{1, 2, 3, 2, 1}

	result, _ := conv.Correlate(signal, template, conv.ModeFull)

	peakIdx, peakVal := conv.FindPeak(result)
	lag := conv.LagFromIndex(peakIdx, len(template))

	fmt.Printf("Peak at index %d (lag %d) with value %.2f\n", peakIdx, lag, peakVal)

	// Output:
	// Peak at index 7 (lag 3) with value 19.00
}

func ExampleOutputLen() {
	for _, mode := range []conv.Mode{conv.ModeFull, conv.ModeSame, conv.ModeValid} {
		n, _ := conv.OutputLen(mode, 100, 8)
		fmt.Println(mode, n)
	}

	// Output:
	// full 107
	// same 100
	// valid 93
}
