// Package teamcore contains the enum vocabulary shared by the team data
// model and the ROM attribute codec: tactics, kit styles and colors,
// formation positions, player roles and head styles.
//
// Each enum type embeds Enum and is backed by a small table of values,
// following the same shape throughout: a ByID lookup for the raw byte
// stored in the ROM, a FromName/FromInt pair for resolving either form
// found in an on-disk JSON document, and JSON marshaling that always
// emits the canonical name.
package teamcore

import (
	"fmt"
	"strings"
)

// Enum is the base / common part of enum types.
type Enum struct {
	// Name is the canonical name of the value.
	Name string
}

// String returns the string representation of the enum (the name).
// Defined with a value receiver so this gets called even through an
// embedding pointer type.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unrecognised value, with a name
// of the form "Unknown(N)".
func UnknownEnum(id any) Enum {
	return Enum{fmt.Sprintf("Unknown(%v)", id)}
}

// Unknown reports whether this is an Unknown(N) placeholder returned by a
// ByID lookup for an out-of-range ID, rather than a genuine named member.
func (e Enum) Unknown() bool {
	return strings.HasPrefix(e.Name, "Unknown(")
}
