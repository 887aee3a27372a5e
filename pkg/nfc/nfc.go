// Package nfc provides a string type held in Unicode canonical composed
// form (NFC), so that canonically equivalent spellings compare equal,
// hash equal, and sort consistently without renormalizing at every
// comparison site.
//
// Two strings with different bytes can be canonically equivalent; keeping
// every String in NFC makes equivalence a plain byte comparison, paid for
// once at construction. Values are comparable: == is canonical-equivalence
// equality, and map keys hash consistently with ==. Ordering uses raw
// code point order of the canonical buffer, which is probably not correct
// Unicode collation order; callers needing locale-aware ordering must
// layer that on top.
package nfc

import (
	"strconv"
	"strings"
)

// String is a Unicode string in canonical composed form. The buffer is
// private so it stays canonical: every way in runs the construction
// pipeline, and no operation mutates it in place. The zero value is the
// empty string.
//
// Constructors assume well-formed UTF-8; the normalizer passes invalid
// byte sequences through untouched, so validation belongs to whatever
// boundary admits raw bytes (see UnmarshalText, GobDecode, Scan).
type String struct {
	s string
}

// New returns s in canonical composed form. Already-canonical input is
// copied without transforming.
func New(s string) String { return Default.New(s) }

// NewCaseless returns s normalized, case folded, and normalized again,
// for case-insensitive canonical comparison.
func NewCaseless(s string) String { return Default.NewCaseless(s) }

// NewPath is New with every '\' rewritten to '/'.
func NewPath(s string) String { return Default.NewPath(s) }

// NewCaselessPath is NewCaseless with every '\' rewritten to '/'.
func NewCaselessPath(s string) String { return Default.NewCaselessPath(s) }

// New builds a canonical String using the scheme's capabilities.
func (sc Scheme) New(s string) String {
	if sc.Norm.IsNormalized(s) {
		return String{s}
	}
	return String{sc.Norm.Normalize(s)}
}

// NewCaseless builds a caseless canonical String. Folding is never
// skipped, and it runs between two normalization passes: folding an
// already-canonical string can produce non-canonical output, so the
// second pass is mandatory.
func (sc Scheme) NewCaseless(s string) String {
	return String{sc.Norm.Normalize(sc.Fold.Fold(sc.Norm.Normalize(s)))}
}

// NewPath builds a canonical String with '\' rewritten to '/'. The
// already-normalized fast path only applies when no rewrite occurred;
// the oracle's answer for the original string says nothing about the
// rewritten one.
func (sc Scheme) NewPath(s string) String {
	if !strings.ContainsRune(s, '\\') {
		return sc.New(s)
	}
	return String{sc.Norm.Normalize(rewriteSeparators(s))}
}

// NewCaselessPath builds a caseless canonical String with '\' rewritten
// to '/'.
func (sc Scheme) NewCaselessPath(s string) String {
	return sc.NewCaseless(rewriteSeparators(s))
}

// Concat appends raw text to s and renormalizes the combined sequence
// as one unit. Canonical form is not closed under concatenation: a
// combining mark at the start of t composes with the last rune of s.
// Neither input changes; the result is a new String. The text is not
// case folded even if s came from a caseless constructor.
func (sc Scheme) Concat(s String, t string) String {
	return sc.New(s.s + t)
}

// Concat appends raw text using the Default scheme. See Scheme.Concat.
func (s String) Concat(t string) String { return Default.Concat(s, t) }

// String returns the canonical text, implementing fmt.Stringer.
func (s String) String() string { return s.s }

// Bytes returns a copy of the canonical buffer's UTF-8 encoding, for
// byte-oriented consumers such as content hashing.
func (s String) Bytes() []byte { return []byte(s.s) }

// GoString implements fmt.GoStringer, rendering like the inner string.
func (s String) GoString() string { return strconv.Quote(s.s) }

// Len returns the length of the canonical buffer in bytes.
func (s String) Len() int { return len(s.s) }

// Compare orders by raw code point order of the canonical buffer,
// returning -1, 0, or +1 as in strings.Compare. This is not a collation
// order.
func (s String) Compare(t String) int { return strings.Compare(s.s, t.s) }

// Less reports whether s sorts before t in raw code point order.
func (s String) Less(t String) bool { return s.s < t.s }
