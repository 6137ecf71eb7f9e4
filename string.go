package bitset

import (
	"fmt"
	"strings"
)

const maxStringedBits = 512

// String renders the bitset as "[len]{bits}". Bitsets longer than 512 bits
// show the first and last 256 bits around a "<more N bits>" marker. An
// invalid bitset renders as "[0]{}".
func (b *Bitset) String() string {
	if !b.valid() {
		return "[0]{}"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%v]{", b.len)
	if b.len <= maxStringedBits {
		writeBits(&sb, b.bits)
	} else {
		half := uint(maxStringedBits / 2)
		writeBits(&sb, b.bits[:half])
		fmt.Fprintf(&sb, " <more %v bits> ", b.len-2*half)
		writeBits(&sb, b.bits[b.len-half:])
	}
	sb.WriteString("}")
	return sb.String()
}

// BitString returns the '0'/'1' text of the bitset, suitable for
// NewFromBitString. Empty for an invalid bitset.
func (b *Bitset) BitString() string {
	if !b.valid() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(b.len))
	writeBits(&sb, b.bits)
	return sb.String()
}

func writeBits(sb *strings.Builder, bits []bool) {
	for _, bit := range bits {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
}
