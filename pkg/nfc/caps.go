package nfc

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer puts a string into canonical composed form.
//
// IsNormalized must be consistent with Normalize:
// IsNormalized(s) reports whether Normalize(s) == s.
type Normalizer interface {
	Normalize(s string) string
	IsNormalized(s string) bool
}

// CaseFolder applies Unicode default case folding. Default folding is
// locale-independent and distinct from lowercasing ("straße" folds to
// "strasse").
type CaseFolder interface {
	Fold(s string) string
}

// Scheme binds the normalizer and case folder a String is built with.
// The zero Scheme is not usable; start from Default and swap
// capabilities as needed.
type Scheme struct {
	Norm Normalizer
	Fold CaseFolder
}

// Default is the scheme behind the package-level constructors:
// canonical composition (NFC) from x/text/unicode/norm and full case
// folding from x/text/cases.
var Default = Scheme{Norm: NFC{}, Fold: FullFold{}}

// NFC is the default Normalizer, backed by norm.NFC.
type NFC struct{}

func (NFC) Normalize(s string) string  { return norm.NFC.String(s) }
func (NFC) IsNormalized(s string) bool { return norm.NFC.IsNormalString(s) }

// FullFold is the default CaseFolder. A cases.Caser carries internal
// state, so every call builds its own.
type FullFold struct{}

func (FullFold) Fold(s string) string { return cases.Fold().String(s) }

// separators rewrites '\' to '/' so path strings compare by a single
// separator convention.
var separators = runes.Map(func(r rune) rune {
	if r == '\\' {
		return '/'
	}
	return r
})

func rewriteSeparators(s string) string {
	out, _, _ := transform.String(separators, s)
	return out
}
