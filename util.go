package encode

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Order is the default byte order of Fixed.
var Order binary.ByteOrder = binary.BigEndian

const BUFFER_SIZE = 4096

// empty is the static zero block Zeros writes from.
var empty [BUFFER_SIZE]byte

// Roundup rounds n up to the nearest multiple of align. align must be a power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
