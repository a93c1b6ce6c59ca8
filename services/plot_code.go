package services

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// SplitPlots turns the stored comma-delimited plot list into individual plot
// codes. All whitespace is removed from each code and empty entries are
// dropped.
func SplitPlots(plots string) []string {
	parts := strings.Split(plots, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		code := stripSpaces(p)
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// PlotNumber returns the leading numeric component of a plot code. The code is
// cut at the first "/" if present, otherwise at the first "-", and the rest
// is parsed as a number. ok is false when no finite number can be read, so
// codes such as "inf" rank with the other unparsable codes.
func PlotNumber(code string) (n float64, ok bool) {
	prefix := code
	if i := strings.Index(prefix, "/"); i >= 0 {
		prefix = prefix[:i]
	} else if i := strings.Index(prefix, "-"); i >= 0 {
		prefix = prefix[:i]
	}

	prefix = stripSpaces(prefix)
	if prefix == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ComparePlotCodes orders plot codes ascending by their numeric prefix.
// Codes without a readable number sort after every numbered code and compare
// equal to each other.
func ComparePlotCodes(a, b string) int {
	na, okA := PlotNumber(a)
	nb, okB := PlotNumber(b)

	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	return 0
}

// SortPlotCodes sorts codes in place. Codes with equal numeric prefixes keep
// their input order.
func SortPlotCodes(codes []string) {
	sort.SliceStable(codes, func(i, j int) bool {
		return ComparePlotCodes(codes[i], codes[j]) < 0
	})
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
