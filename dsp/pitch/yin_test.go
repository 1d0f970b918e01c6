package pitch

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-voice/dsp/core"
	"github.com/cwbudde/algo-voice/dsp/noise"
	"github.com/cwbudde/algo-voice/internal/testutil"
)

// sine mirrors the reference generator: sin(2*pi*f*i/sr).
func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}
	return out
}

func TestYINReferenceValues(t *testing.T) {
	tests := []struct {
		name       string
		frame      []float64
		sampleRate float64
		fmin, fmax float64
		want       float64
	}{
		{"100 Hz short frame", sine(100, 1000, 64), 1000, 50, 200, 100.34399773191603},
		{"55 Hz", sine(55, 12000, 1024), 12000, 50, 1000, 55.0003672654911},
		{"100 Hz", sine(100, 12000, 1024), 12000, 50, 1000, 100.00256779881623},
		{"200 Hz", sine(200, 12000, 1024), 12000, 50, 1000, 200.02448876985898},
		{"300 Hz", sine(300, 12000, 1024), 12000, 50, 1000, 300.0866756426562},
		{"440 Hz", sine(440, 12000, 1024), 12000, 50, 1000, 440.23675094389307},
		{"950 Hz", sine(950, 12000, 1024), 12000, 50, 1000, 951.2037869758673},
		{
			"complex 200 Hz",
			testutil.SineSum(12000, 1024,
				testutil.Partial{FreqHz: 200, Amplitude: 1},
				testutil.Partial{FreqHz: 400, Amplitude: 0.5},
				testutil.Partial{FreqHz: 600, Amplitude: 0.25}),
			12000, 50, 500, 200.01997492533917,
		},
		{"257.3 Hz", sine(257.3, 12000, 1024), 12000, 50, 500, 257.33034403647713},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YIN(tt.frame, tt.sampleRate, tt.fmin, tt.fmax, 0.15)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Voiced {
				t.Fatalf("got unvoiced, want %v Hz", tt.want)
			}
			testutil.RequireRelative(t, "frequency", got.Frequency, tt.want, 1e-6)
		})
	}
}

func TestYINPureSineAccuracy(t *testing.T) {
	const sr = 16000
	for _, f := range []float64{80, 123.4, 196, 261.63, 330, 415.3} {
		// Two periods of fmin = 60 Hz need 534 samples.
		frame := testutil.DeterministicSine(f, sr, 0.7, 1024)
		got, err := YIN(frame, sr, 60, 450, DefaultThreshold)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Voiced {
			t.Fatalf("%v Hz: unvoiced", f)
		}
		testutil.RequireRelative(t, "frequency", got.Frequency, f, 0.01)
	}
}

func TestYINUnvoiced(t *testing.T) {
	tests := []struct {
		name      string
		frame     []float64
		threshold float64
	}{
		{name: "silence", frame: make([]float64, 512), threshold: 0.15},
		{name: "constant", frame: testutil.DC(0.3, 512), threshold: 0.15},
		{name: "white noise", frame: noise.GaussianSlice(99, 1024), threshold: 0.01},
		{name: "single sample", frame: []float64{1}, threshold: 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YIN(tt.frame, 12000, 50, 500, tt.threshold)
			if err != nil {
				t.Fatal(err)
			}
			if got != Unvoiced {
				t.Fatalf("got %v, want unvoiced", got)
			}
			if _, ok := got.Hz(); ok {
				t.Fatal("Hz reported voiced")
			}
		})
	}
}

func TestYINInvalidArguments(t *testing.T) {
	frame := sine(100, 1000, 64)
	tests := []struct {
		name                      string
		frame                     []float64
		sr, fmin, fmax, threshold float64
	}{
		{"empty frame", nil, 1000, 50, 200, 0.15},
		{"zero rate", frame, 0, 50, 200, 0.15},
		{"nan rate", frame, math.NaN(), 50, 200, 0.15},
		{"zero fmin", frame, 1000, 0, 200, 0.15},
		{"fmax equal fmin", frame, 1000, 100, 100, 0.15},
		{"fmax below fmin", frame, 1000, 200, 50, 0.15},
		{"zero threshold", frame, 1000, 50, 200, 0},
		{"threshold one", frame, 1000, 50, 200, 1},
		{"nan threshold", frame, 1000, 50, 200, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YIN(tt.frame, tt.sr, tt.fmin, tt.fmax, tt.threshold)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
			if got.Voiced {
				t.Fatal("invalid call returned a voiced estimate")
			}
		})
	}
}

func TestDifferenceAndCMND(t *testing.T) {
	d := Difference([]float64{1, 0, -1, 0, 1}, 10)
	// tauMax clamps to 4.
	testutil.RequireSliceNearlyEqual(t, d, []float64{0, 4, 8, 2, 0}, 0)

	c := CMND(d)
	testutil.RequireSliceNearlyEqual(t, c, []float64{1, 1, 4.0 / 3, 3.0 / 7, 0}, 1e-15)

	zeros := CMND([]float64{0, 0, 0})
	testutil.RequireSliceNearlyEqual(t, zeros, []float64{1, 1, 1}, 0)

	if Difference(nil, 3) != nil || CMND(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestDifferenceFFTMatchesDirect(t *testing.T) {
	frames := [][]float64{
		sine(257.3, 12000, 1024),
		noise.GaussianSlice(3, 700),
		testutil.SineSum(8000, 333, testutil.Partial{FreqHz: 150, Amplitude: 1}, testutil.Partial{FreqHz: 450, Amplitude: 0.3}),
	}

	for i, frame := range frames {
		tauMax := len(frame) / 2
		direct := Difference(frame, tauMax)
		fast, err := DifferenceFFT(frame, tauMax)
		if err != nil {
			t.Fatal(err)
		}

		scale := 0.0
		for _, v := range frame {
			scale += v * v
		}
		testutil.RequireSliceNearlyEqual(t, fast, direct, 1e-9*scale)
		if len(fast) != tauMax+1 {
			t.Fatalf("frame %d: len = %d, want %d", i, len(fast), tauMax+1)
		}
	}

	one, err := DifferenceFFT([]float64{2}, 5)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, one, []float64{0}, 0)
}

func TestEstimateString(t *testing.T) {
	if s := Unvoiced.String(); s != "unvoiced" {
		t.Fatalf("String() = %q", s)
	}
	if s := (Estimate{Frequency: 100.34399, Voiced: true}).String(); s != "100.344 Hz" {
		t.Fatalf("String() = %q", s)
	}
}
