package formant

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-voice/dsp/core"
	"github.com/cwbudde/algo-voice/dsp/lpc"
	"github.com/cwbudde/algo-voice/dsp/noise"
	"github.com/cwbudde/algo-voice/internal/testutil"
)

var solvers = []struct {
	name   string
	solver RootSolver
}{
	{"companion", CompanionSolver},
	{"durand-kerner", DurandKernerSolver},
}

func requireFormants(t *testing.T, got, want []Formant, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d formants %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if math.Abs(got[i].Frequency-want[i].Frequency) > tol || math.Abs(got[i].Bandwidth-want[i].Bandwidth) > tol {
			t.Fatalf("formant %d: got %+v, want %+v (tol %v)", i, got[i], want[i], tol)
		}
	}
}

func requireAscending(t *testing.T, fs []Formant) {
	t.Helper()
	for i := 1; i < len(fs); i++ {
		if fs[i].Frequency <= fs[i-1].Frequency {
			t.Fatalf("formants not strictly ascending at %d: %v", i, fs)
		}
	}
}

func TestExtractRoundTripSingle(t *testing.T) {
	tests := []struct {
		freq, bw, sr float64
	}{
		{500, 80, 16000},
		{2500, 5, 12000},
		{300, 50, 8000},
		{1200, 200, 44100},
		{3000, 400, 16000},
	}

	for _, s := range solvers {
		for _, tt := range tests {
			c := Resonance(tt.freq, tt.bw, tt.sr)
			got, err := Extract(c[:], tt.sr, 0, tt.sr/2, WithRootSolver(s.solver))
			if err != nil {
				t.Fatalf("%s: %v", s.name, err)
			}
			if len(got) != 1 {
				t.Fatalf("%s %v: got %d formants %v, want 1", s.name, tt, len(got), got)
			}
			testutil.RequireRelative(t, s.name+" frequency", got[0].Frequency, tt.freq, 1e-3)
			testutil.RequireRelative(t, s.name+" bandwidth", got[0].Bandwidth, tt.bw, 1e-3)
		}
	}
}

func TestExtractRoundTripPair(t *testing.T) {
	a := Resonance(500, 100, 16000)
	b := Resonance(2000, 300, 16000)
	poly, err := Convolve(a[:], b[:])
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range solvers {
		got, err := Extract(poly, 16000, 0, 8000, WithRootSolver(s.solver))
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		requireFormants(t, got, []Formant{{500, 100}, {2000, 300}}, 1e-6)
	}
}

func TestExtractSynthesizeRoundTrip(t *testing.T) {
	want := []Formant{{730, 90}, {1090, 110}, {2440, 170}, {3400, 250}}
	poly, err := Synthesize([]Formant{want[2], want[0], want[3], want[1]}, 10000)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Extract(poly, 10000, 0, 5000)
	if err != nil {
		t.Fatal(err)
	}
	requireFormants(t, got, want, 1e-6)
}

// Reference formants of Burg(order 12) on 700+0.7*1200+0.4*2500 Hz at
// 12 kHz, as produced by the reference generator.
func TestExtractBurgThreeSines(t *testing.T) {
	clean := testutil.SineSum(12000, 512,
		testutil.Partial{FreqHz: 700, Amplitude: 1},
		testutil.Partial{FreqHz: 1200, Amplitude: 0.7},
		testutil.Partial{FreqHz: 2500, Amplitude: 0.4})

	tests := []struct {
		name  string
		noise float64
		want  []Formant
	}{
		{
			name: "clean",
			want: []Formant{
				{258.69331249765474, 102.60052813127916},
				{764.2747018109463, 92.45322180466155},
				{1236.4191379277622, 75.10622112777979},
				{1648.867482984788, 51.16160148773718},
				{1975.8093722024555, 26.205987392435517},
				{2186.399530060286, 7.291594046758631},
			},
		},
		{
			name: "noise 0.1", noise: 0.1,
			want: []Formant{
				{265.0461097148329, 108.35460669734884},
				{782.8964425799999, 97.82867819456382},
				{1267.059016963891, 79.69474026014457},
				{1691.2833645482117, 54.48584476356096},
				{2027.6930038109606, 28.151849952470148},
				{2245.7502181045115, 7.700910708209413},
			},
		},
		{
			name: "noise 0.2", noise: 0.2,
			want: []Formant{
				{284.51021338280793, 127.61631065735666},
				{840.9565260821829, 115.70064677355226},
				{1363.050635539743, 94.89244822131059},
				{1823.8755925399953, 65.49915145378196},
				{2191.413048107412, 34.39464108985001},
				{2432.01469822383, 9.308648915170943},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := append([]float64(nil), clean...)
			if tt.noise > 0 {
				noise.AddScaled(x, 9012, tt.noise)
			}
			coeffs, err := lpc.Burg(x, 12)
			if err != nil {
				t.Fatal(err)
			}

			for _, s := range solvers {
				got, err := Extract(coeffs, 12000, 100, 5500, WithRootSolver(s.solver))
				if err != nil {
					t.Fatalf("%s: %v", s.name, err)
				}
				requireFormants(t, got, tt.want, 1e-3)
				requireAscending(t, got)
				for _, f := range got {
					if f.Bandwidth <= 0 || f.Bandwidth > 3500 {
						t.Fatalf("%s: bandwidth out of range: %+v", s.name, f)
					}
				}
			}
		})
	}
}

func TestExtractAscendingOnNoise(t *testing.T) {
	for seed := uint32(1); seed <= 20; seed++ {
		x := noise.GaussianSlice(seed, 400)
		coeffs, err := lpc.Burg(x, 16)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Extract(coeffs, 16000, 0, 8000)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		requireAscending(t, got)
	}
}

func TestExtractFiltering(t *testing.T) {
	tests := []struct {
		name         string
		freq, bw, sr float64
		minHz, maxHz float64
	}{
		{name: "too sharp", freq: 1000, bw: 1, sr: 16000, minHz: 0, maxHz: 8000},
		{name: "too wide", freq: 1000, bw: 4000, sr: 16000, minHz: 0, maxHz: 8000},
		{name: "above nyquist cap", freq: 7500, bw: 100, sr: 16000, minHz: 0, maxHz: 8000},
		{name: "below min", freq: 400, bw: 100, sr: 16000, minHz: 500, maxHz: 8000},
		{name: "above max", freq: 3000, bw: 100, sr: 16000, minHz: 0, maxHz: 2500},
		{name: "inverted range", freq: 1000, bw: 100, sr: 16000, minHz: 3000, maxHz: 2000},
		{name: "real pole", freq: 0, bw: 100, sr: 16000, minHz: 0, maxHz: 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Resonance(tt.freq, tt.bw, tt.sr)
			got, err := Extract(c[:], tt.sr, tt.minHz, tt.maxHz)
			if err != nil {
				t.Fatal(err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("got %v, want empty non-nil slice", got)
			}
		})
	}
}

func TestExtractNegativeMinFloored(t *testing.T) {
	c := Resonance(300, 60, 16000)
	got, err := Extract(c[:], 16000, -1000, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %v, want one formant", got)
	}
}

func TestExtractConstantPolynomial(t *testing.T) {
	got, err := Extract([]float64{1}, 16000, 0, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}

	// Early-terminated Burg output: trailing zeros give roots at the origin.
	got, err = Extract([]float64{1, -1, 0, 0}, 16000, 0, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestExtractWithLimits(t *testing.T) {
	c := Resonance(1000, 1, 16000)
	lim := DefaultLimits()
	lim.MaxMagnitude = 1
	got, err := Extract(c[:], 16000, 0, 8000, WithLimits(lim))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %v, want the sharp resonance with relaxed limits", got)
	}
}

func TestExtractErrors(t *testing.T) {
	c := Resonance(1000, 100, 16000)

	if _, err := Extract(nil, 16000, 0, 8000); !errors.Is(err, ErrEmptyPolynomial) {
		t.Fatalf("err = %v, want ErrEmptyPolynomial", err)
	}
	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Extract(c[:], sr, 0, 8000); !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("sr %v: err = %v, want ErrInvalidArgument", sr, err)
		}
	}
	if _, err := Extract(c[:], 16000, math.NaN(), 8000); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}

	boom := errors.New("boom")
	failing := func([]float64) ([]complex128, error) { return nil, boom }
	if _, err := Extract(c[:], 16000, 0, 8000, WithRootSolver(failing)); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped solver error", err)
	}
}

func TestFromPole(t *testing.T) {
	c := Resonance(1500, 120, 16000)
	r := math.Sqrt(c[2])
	theta := 2 * math.Pi * 1500 / 16000
	f := FromPole(complex(r*math.Cos(theta), r*math.Sin(theta)), 16000)
	testutil.RequireRelative(t, "frequency", f.Frequency, 1500, 1e-12)
	testutil.RequireRelative(t, "bandwidth", f.Bandwidth, 120, 1e-9)
}
