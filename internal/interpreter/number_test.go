package interpreter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		tok  string
		want float64
		ok   bool
	}{
		{"5", 5, true},
		{"-5", -5, true},
		{"+5", 5, true},
		{"3.25", 3.25, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"2E-2", 0.02, true},
		{"1e+2", 100, true},
		{"007", 7, true},
		{"1e400", math.Inf(1), true},
		{"-1e400", math.Inf(-1), true},
		{"1e-400", 0, true},
		{"inf", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"INF", math.Inf(1), true},
		{"InFiNiTy", math.Inf(1), true},

		{"", 0, false},
		{"+", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"+-1", 0, false},
		{"--1", 0, false},
		{"1e", 0, false},
		{"1e+", 0, false},
		{"e5", 0, false},
		{"0x10", 0, false},
		{"0x1p-2", 0, false},
		{"1_000", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
		{"5abc", 0, false},
		{"infinite", 0, false},
		{"İnf", 0, false},
		{"-İnfinity", 0, false},
		{"ınf", 0, false},
		{"naN̈", 0, false},
		{"١٢", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.tok)
		assert.Equal(t, tt.ok, ok, "token %q", tt.tok)
		if tt.ok {
			assert.Equal(t, tt.want, got, "token %q", tt.tok)
		}
	}
}

func TestParseNumberNaN(t *testing.T) {
	for _, tok := range []string{"nan", "NaN", "-nan", "+NAN"} {
		v, ok := ParseNumber(tok)
		assert.True(t, ok, tok)
		assert.True(t, math.IsNaN(v), tok)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{5, "5"},
		{8, "8"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{1e20, "100000000000000000000"},
		{1e-7, "0.0000001"},
		{math.Copysign(0, -1), "-0"},
		{0, "0"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v))
	}
}
