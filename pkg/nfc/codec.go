package nfc

import (
	"database/sql/driver"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Decoding is a construction site: the wire carries no canonical-form
// guarantee, so every decode path below runs the plain pipeline again
// before storing. Whether the value was originally built caseless is not
// encoded, so decode never folds; callers wanting a caseless value must
// rebuild through NewCaseless.
//
// Decode paths are also the UTF-8 boundary. In-memory constructors assume
// well-formed input, but these entry points see raw external bytes and
// reject malformed sequences.

// MarshalText implements encoding.TextMarshaler, returning the canonical
// bytes. This also serves encoding/json and yaml.
func (s String) MarshalText() ([]byte, error) {
	return []byte(s.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, renormalizing the
// incoming text.
func (s *String) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return fmt.Errorf("nfc: unmarshal: invalid UTF-8 sequence")
	}
	*s = New(string(text))
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical text as
// a plain scalar.
func (s String) MarshalYAML() (any, error) {
	return s.s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, renormalizing the decoded
// scalar.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(raw))
}

// GobEncode implements gob.GobEncoder, returning the canonical bytes.
func (s String) GobEncode() ([]byte, error) {
	return []byte(s.s), nil
}

// GobDecode implements gob.GobDecoder, renormalizing the decoded bytes.
func (s *String) GobDecode(data []byte) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("nfc: gob decode: invalid UTF-8 sequence")
	}
	*s = New(string(data))
	return nil
}

// Value implements driver.Valuer so canonical text lands in TEXT columns
// as-is.
func (s String) Value() (driver.Value, error) {
	return s.s, nil
}

// Scan implements sql.Scanner, renormalizing whatever the driver hands
// back. NULL scans to the empty String.
func (s *String) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = String{}
		return nil
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("nfc: cannot scan %T into nfc.String", src)
	}
}
