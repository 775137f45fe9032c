package variantfsm

import (
	"log/slog"
	"strconv"
)

// Variant identifies the active member of a union by its position.
// The zero Variant is the first member.
type Variant uint8

const (
	V1 Variant = iota
	V2
	V3
	V4
	V5
)

func (v Variant) String() string {
	return "V" + strconv.Itoa(int(v)+1)
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
