package pathdata

import (
	"bytes"
	"math"
	stdStrconv "strconv"

	"github.com/tdewolff/minify/v2"
)

// Options controls how path data is written. Options are passed per call, the writer keeps no global preferences.
type Options struct {
	// Normalize writes absolute coordinates with M, L, C and Z only: quadratic Béziers and arcs become cubic
	// Béziers and every parameter group repeats its command letter.
	Normalize bool

	Precision int // significant digits, <= 0 writes the shortest representation that reads back exactly
	Decimals  int // fixed number of decimals, < 0 to use Precision instead
	MinExp    int // numbers with an absolute value below 10^MinExp are written as zero, 0 disables

	AllowRelative       bool // use relative coordinates when that is shorter
	ForceRepeatCommands bool // repeat the command letter for implicitly repeated parameter groups
	Minify              bool // omit optional separators, "M1 2H4" instead of "M 1,2 H 4"
}

// DefaultOptions writes the most compact form that reads back to exactly the same geometry.
var DefaultOptions = Options{
	Precision:     -1,
	Decimals:      -1,
	AllowRelative: true,
}

// NormalizeOptions writes normalized path data with two decimals.
var NormalizeOptions = Options{
	Normalize:           true,
	Precision:           -1,
	Decimals:            2,
	ForceRepeatCommands: true,
}

func (o *Options) clean(f float64) float64 {
	if o.MinExp != 0 && math.Abs(f) < math.Pow10(o.MinExp) {
		return 0.0
	} else if 0 <= o.Decimals {
		// avoid writing -0 for small negative numbers
		if pow := math.Pow10(o.Decimals); math.Round(f*pow) == 0.0 {
			return 0.0
		}
	}
	if f == 0.0 {
		return 0.0 // negative zero
	}
	return f
}

// appendNum appends the number f as it is written in path data.
func (o *Options) appendNum(b []byte, f float64) []byte {
	f = o.clean(f)
	if 0 <= o.Decimals {
		num := stdStrconv.AppendFloat(nil, f, 'f', o.Decimals, 64)
		if o.Minify {
			return append(b, minify.Decimal(num, 0)...)
		}
		return append(b, trimDecimal(num)...)
	}

	prec := o.Precision
	if prec <= 0 {
		prec = -1
	}
	num := stdStrconv.AppendFloat(nil, f, 'g', prec, 64)
	if o.Minify || bytes.IndexByte(num, 'e') != -1 {
		// shortens exponents such as 1e-05 and 1e+06, and leading zeros in minify mode
		return append(b, minify.Number(num, 0)...)
	}
	return append(b, num...)
}

// roundNum returns the value a reader obtains from the written number.
func (o *Options) roundNum(f float64) float64 {
	num := o.appendNum(nil, f)
	v, err := stdStrconv.ParseFloat(string(num), 64)
	if err != nil {
		return f
	}
	return v
}

// trimDecimal removes trailing zeros after the decimal point and the point itself.
func trimDecimal(num []byte) []byte {
	dot := bytes.IndexByte(num, '.')
	if dot == -1 {
		return num
	}
	end := len(num)
	for dot < end-1 && num[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return num[:end]
}
