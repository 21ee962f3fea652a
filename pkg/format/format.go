// Package format renders numbers and URL components the way the generated posts expect them.
package format

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number formata um float no menor formato decimal que o representa ("350", "0.1").
// Non-finite values render as "Infinity", "-Infinity" and "NaN".
func Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Money formata um valor monetário com duas casas decimais.
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number(v)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// RoundHalfUp rounds to the nearest integer with halves going toward +Inf.
// 0.49999999999999994 rounds to 0.
func RoundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return f
}

var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s leaving only A-Z a-z 0-9 and -_.!~*'() literal.
func EncodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

// Hashtag lowercases s and strips every whitespace rune.
func Hashtag(s string) string {
	return "#" + strings.Join(strings.Fields(strings.ToLower(s)), "")
}
