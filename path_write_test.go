package pathdata

import (
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestWrite(t *testing.T) {
	var tts = []struct {
		d         string
		normalize bool
		out       string
	}{
		{"M 1,2 L 4,2 L 4,8 L 1,8 z", false, "M 1,2 H 4 V 8 H 1 z"},
		{"M 1,2 L 4,2 L 4,8 L 1,8 z", true, "M 1,2 L 4,2 L 4,8 L 1,8 Z"},
		{"M 0,0 M 1,1 L 2,2 M 3,3 z M 4,4 L 5,5 z M 6,6", false, "M 0,0 M 1,1 2,2 M 3,3 z M 4,4 5,5 z M 6,6"},
		{"M 100,100 L 101,101", false, "M 100,100 l 1,1"},
		{"M 0,0 A 5,5 0 0 1 10,0", false, "M 0,0 A 5,5 0 0 1 10,0"},
		{"M 1,1 A 0,5 0 0 1 10,1", true, "M 1,1 L 10,1"},
		{"M 1,1 A 2,2 0 0 1 1,1", true, "M 1,1"},
		{"M 0,0 Q 3,3 6,0", true, "M 0,0 C 2,2 4,2 6,0"},
		{"M 1,2 L 4,2 L 4,8 L 1,8 z m 1,2 l 3,0 l 0,6 l -3,0 l 0,-6 m 1,2 l 3,0 l 0,6 l -3,0 z M 1,2 L 4,2 L 4,8 L 1,8 L 1,2", false,
			"M 1,2 H 4 V 8 H 1 z M 2,4 H 5 v 6 H 2 V 4 M 3,6 H 6 v 6 H 3 z M 1,2 H 4 V 8 H 1 V 2"},
		{"m 2,3 l 20,0.0003 h 10 v 10 q 50,10 40,25 t 70,25 l 0,10 c 5,6 10,5 10,10 s 10,20 5,6 z", true,
			"M 2,3 L 22,3 L 32,3 L 32,13 C 65.33,19.67 78.67,28 72,38 C 65.33,48 88.67,56.33 142,63 L 142,73 C 147,79 152,78 152,83 C 152,88 162,103 157,89 Z"},
		{"", false, ""},
		{"", true, ""},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			test.String(t, Write(MustParse(tt.d), tt.normalize), tt.out)
		})
	}
}

func TestWriteOptions(t *testing.T) {
	minify := DefaultOptions
	minify.Minify = true
	repeat := DefaultOptions
	repeat.ForceRepeatCommands = true
	absolute := DefaultOptions
	absolute.AllowRelative = false
	precision := DefaultOptions
	precision.Precision = 3
	decimals := DefaultOptions
	decimals.Decimals = 1
	minExp := Options{Precision: 8, Decimals: -1, MinExp: -8, AllowRelative: true}

	var tts = []struct {
		d   string
		o   Options
		out string
	}{
		{"M 1,2 L 4,2 L 4,8 L 1,8 z", minify, "M1 2H4V8H1z"},
		{"M 0,0 L 1,-1 L 2,3", minify, "M0 0 1-1 2 3"},
		{"M 0,0.5 L 0,-0.5", minify, "M0 .5v-1"},
		{"M 0,0 L 1,1 L 2,3", DefaultOptions, "M 0,0 1,1 2,3"},
		{"M 0,0 L 1,1 L 2,3", repeat, "M 0,0 L 1,1 L 2,3"},
		{"M 100,100 L 101,101", absolute, "M 100,100 101,101"},
		{"M 1.23456789,2", precision, "M 1.23,2"},
		{"M 1.26,2 L 3.04,2", decimals, "M 1.3,2 H 3"},
		{"M -0.04,1", decimals, "M 0,1"},
		{"M 1,1.23456781e-9", minExp, "M 1,0"},
		{"M 0,0 L 1,1 L 2,3", NormalizeOptions, "M 0,0 L 1,1 L 2,3"},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			test.String(t, WriteOptions(MustParse(tt.d), tt.o), tt.out)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	ds := []string{
		"M 1,2 L 4,2 L 4,8 L 1,8 z",
		"M 1,2 L 4,2 L 4,8 L 1,8 L 1,2",
		"M 1,2 L 4,2 L 4,8 L 1,8 z" + "m 1,2 l 3,0 l 0,6 l -3,0 l 0,-6" + "m 1,2 l 3,0 l 0,6 l -3,0 z" + "M 1,2 L 4,2 L 4,8 L 1,8 L 1,2",
		"M 0,0 M 1,1 L 2,2 M 3,3 z M 4,4 L 5,5 z M 6,6",
		"M .01,.02 L 0.04,0.02 L.04,.08L0.01,0.08 z" + "M 1e-2,.2e-1 L 0.004e1,0.0002e+2 L04E-2,.08e0L1.0e-2,80e-3 z",
		"M 0.1,0 L 0.3,1 L 0.7,0.1 C 0.1,0.2 0.3,0.4 1e-7,-3e21",
		"M 123456781,1.23456781e-8 L 123456782,1.23456782e-8 L 123456785,1.23456785e-8 L 10123456400,1.23456785e-8",
		"M 349,683 A 170,170 0 1 0 349.00000000000006,683",
	}
	for _, o := range []Options{DefaultOptions, {Precision: -1, Decimals: -1, AllowRelative: true, Minify: true}, {Precision: -1, Decimals: -1}} {
		for _, d := range ds {
			t.Run(d, func(t *testing.T) {
				pv := MustParse(d)
				s := WriteOptions(pv, o)
				pv2, err := ParseStrict(s)
				test.Error(t, err, s)
				test.That(t, pv.Equals(pv2, 1e-16), d, "=>", s)
			})
		}
	}
}

func TestWriteRandomRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		pv := RandomPathVector(4)
		for _, o := range []Options{DefaultOptions, {Precision: -1, Decimals: -1, Minify: true}} {
			s := WriteOptions(pv, o)
			pv2, err := ParseStrict(s)
			test.Error(t, err, s)
			test.That(t, pv.Equals(pv2, 0.0), pv, "=>", s)
		}
	}
}

func TestWriteNormalizedRoundTrip(t *testing.T) {
	exact := Options{Normalize: true, Precision: -1, Decimals: -1, ForceRepeatCommands: true}
	for _, d := range []string{
		"M 0,0 A 5,5 0 0 1 10,0 A 3,5 30 1 0 0,0 z",
		"M 1,1 Q 2,3 4,1 T 8,1 C 1,2 3,4 5,6",
		"M 2,0 A 2,1 0 0 0 -2,0 A 2,1 0 0 0 2,0 z",
	} {
		t.Run(d, func(t *testing.T) {
			pv := MustParse(d)
			s := WriteOptions(pv, exact)
			for _, c := range s {
				test.That(t, strings.ContainsRune("MLCZ0123456789.-e, ", c), "unexpected character in", s)
			}
			test.That(t, MustParse(s).Equals(pv.ToCubics(), 1e-6), d, "=>", s)
		})
	}
}

func TestWriteNearFullArc(t *testing.T) {
	pv := MustParse("M349 683 A170 170 0 1 0 349.00000000000006 683")
	s := Write(pv, true)
	test.That(t, !strings.Contains(s, "NaN"), s)
	test.That(t, !strings.Contains(s, "Inf"), s)

	pv2 := MustParse(s)
	test.T(t, len(pv2), 1)
	test.That(t, 0 < len(pv2[0].Segments), s)
	end := pv2[0].End()
	test.FloatDiff(t, end.X, 349.0, 0.01)
	test.FloatDiff(t, end.Y, 683.0, 0.01)
	for _, seg := range pv2[0].Segments {
		c := seg.(Cube)
		test.That(t, !math.IsNaN(c.Ctrl1.X) && !math.IsNaN(c.Ctrl2.Y))
		// the circle has a diameter of 340
		test.That(t, math.Abs(c.To.Y-683.0) <= 340.01 && math.Abs(c.To.X-349.0) <= 170.01, s)
	}
}

func TestFormatCommands(t *testing.T) {
	cmds := []Command{
		{Op: MoveToOp, Args: [7]float64{1, 2}},
		{Op: LineToOp, Args: [7]float64{3, 4}},
		{Op: LineToOp, Args: [7]float64{5, 6}},
		{Op: ArcToOp, Rel: true, Args: [7]float64{2, 2, 0, 1, 0, -1, -1}},
		{Op: ArcToOp, Rel: true, Args: [7]float64{2, 2, 0, 0, 1, 1, 1}},
		{Op: CloseOp},
	}
	test.String(t, FormatCommands(cmds, DefaultOptions), "M 1,2 3,4 5,6 a 2,2 0 1 0 -1,-1 2,2 0 0 1 1,1 Z")
	test.String(t, FormatCommands(cmds, Options{Precision: -1, Decimals: -1, ForceRepeatCommands: true, Minify: true}), "M1 2L3 4L5 6a2 2 0 1 0-1-1a2 2 0 0 1 1 1Z")
	test.String(t, cmds[3].String(), "a 2,2 0 1 0 -1,-1")
}

func TestAppendPath(t *testing.T) {
	b := []byte("d=")
	b = AppendPath(b, Rect(0, 0, 2, 2), DefaultOptions)
	test.String(t, string(b), "d=M 0,0 H 2 V 2 H 0 z")
}
