package bitset

import "math"

const byteBits = 8

// Bitset is a fixed-length ordered sequence of bits. The length is set at
// construction and never changes for the lifetime of the storage. Index 0 is
// the first (most significant) bit for string-based construction.
//
// The zero value is an uninitialized bitset: fallible operations on it fail
// with ErrNil and predicates return their zero value. A Bitset must not be
// used from multiple goroutines without external synchronization.
type Bitset struct {
	bits []bool
	len  uint
}

// New returns a zero-filled bitset of n bits.
func New(n uint) (*Bitset, error) {
	b := &Bitset{}
	if err := b.Init(n); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromBitString returns a bitset of n bits parsed from a bit string.
// See InitFromBitString for the parsing rules.
func NewFromBitString(s string, n uint) (*Bitset, error) {
	b := &Bitset{}
	if err := b.InitFromBitString(s, n); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromByteString returns a bitset of n*8 bits expanded from a byte
// string. See InitFromByteString for the expansion rules.
func NewFromByteString(s []byte, n uint) (*Bitset, error) {
	b := &Bitset{}
	if err := b.InitFromByteString(s, n); err != nil {
		return nil, err
	}
	return b, nil
}

// Init (re)initializes b to n zero bits. Storage previously owned by b is
// released first, so a live bitset may be reused without an explicit Free.
// Fails with ErrNil if b is nil or n is 0.
func (b *Bitset) Init(n uint) error {
	if b == nil || n == 0 {
		return ErrNil
	}
	b.Free()
	b.bits = make([]bool, n)
	b.len = n
	return nil
}

// InitFromBitString (re)initializes b to n bits taken from the bit string s.
// Bit i is true iff s[i] is the character '1'; any other character yields
// false. Consumption stops at the end of s or at the first NUL byte, leaving
// the remaining bits false. Fails with ErrNil if b is nil or n is 0.
func (b *Bitset) InitFromBitString(s string, n uint) error {
	if b == nil || n == 0 {
		return ErrNil
	}
	b.Free()
	bits := make([]bool, n)
	for i := uint(0); i < n && i < uint(len(s)) && s[i] != 0; i++ {
		bits[i] = s[i] == '1'
	}
	b.bits = bits
	b.len = n
	return nil
}

// InitFromByteString (re)initializes b to n*8 bits expanded from the byte
// string s. Byte i is written most-significant bit first at offsets
// i*8..i*8+7. Consumption stops after n bytes, at the end of s or at the
// first zero byte, leaving the remaining bits false. Fails with ErrNil if b
// or s is nil or n is 0, and with ErrAlloc if n*8 bits are not addressable.
func (b *Bitset) InitFromByteString(s []byte, n uint) error {
	if b == nil || s == nil || n == 0 {
		return ErrNil
	}
	if n > math.MaxUint/byteBits {
		return ErrAlloc
	}
	b.Free()
	bits := make([]bool, n*byteBits)
	for i := uint(0); i < n && i < uint(len(s)) && s[i] != 0; i++ {
		c := s[i]
		for j := uint(0); j < byteBits; j++ {
			bits[i*byteBits+j] = c&(1<<(byteBits-1-j)) != 0
		}
	}
	b.bits = bits
	b.len = n * byteBits
	return nil
}

// Len returns the length of the bitset in bits, or 0 for an uninitialized
// or freed bitset.
func (b *Bitset) Len() uint {
	if !b.valid() {
		return 0
	}
	return b.len
}

// Count returns the number of true bits. An invalid bitset counts as 0.
func (b *Bitset) Count() uint {
	if !b.valid() {
		return 0
	}
	var n uint
	for _, bit := range b.bits {
		if bit {
			n++
		}
	}
	return n
}

// All reports whether every bit is true. False for an invalid bitset.
func (b *Bitset) All() bool {
	if !b.valid() {
		return false
	}
	for _, bit := range b.bits {
		if !bit {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is true. False for an invalid bitset.
func (b *Bitset) Any() bool {
	if !b.valid() {
		return false
	}
	for _, bit := range b.bits {
		if bit {
			return true
		}
	}
	return false
}

// Bit returns the bit at the given index, or false when the bitset is
// invalid or the index is out of range.
func (b *Bitset) Bit(index uint) bool {
	if !b.valid() || index >= b.len {
		return false
	}
	return b.bits[index]
}

// And stores the bitwise AND of b and rhs in b. rhs is read but never
// modified. Fails with ErrNil for an absent operand or storage and with
// ErrLength when the lengths differ, leaving both operands untouched.
func (b *Bitset) And(rhs *Bitset) error {
	if err := checkOperands(b, rhs); err != nil {
		return err
	}
	for i, r := range rhs.bits {
		b.bits[i] = b.bits[i] && r
	}
	return nil
}

// Or stores the bitwise OR of b and rhs in b. Same contract as And.
func (b *Bitset) Or(rhs *Bitset) error {
	if err := checkOperands(b, rhs); err != nil {
		return err
	}
	for i, r := range rhs.bits {
		b.bits[i] = b.bits[i] || r
	}
	return nil
}

// Xor stores the bitwise XOR of b and rhs in b. Same contract as And.
func (b *Bitset) Xor(rhs *Bitset) error {
	if err := checkOperands(b, rhs); err != nil {
		return err
	}
	for i, r := range rhs.bits {
		b.bits[i] = b.bits[i] != r
	}
	return nil
}

// Not flips every bit of b in place. Fails with ErrNil if b or its storage
// is absent.
func (b *Bitset) Not() error {
	if !b.valid() {
		return ErrNil
	}
	for i := range b.bits {
		b.bits[i] = !b.bits[i]
	}
	return nil
}

// And returns a new bitset holding the bitwise AND of lhs and rhs, leaving
// both inputs untouched. Errors match the in-place method.
func And(lhs, rhs *Bitset) (*Bitset, error) {
	out := lhs.Clone()
	if err := out.And(rhs); err != nil {
		return nil, err
	}
	return out, nil
}

// Or returns a new bitset holding the bitwise OR of lhs and rhs.
func Or(lhs, rhs *Bitset) (*Bitset, error) {
	out := lhs.Clone()
	if err := out.Or(rhs); err != nil {
		return nil, err
	}
	return out, nil
}

// Xor returns a new bitset holding the bitwise XOR of lhs and rhs.
func Xor(lhs, rhs *Bitset) (*Bitset, error) {
	out := lhs.Clone()
	if err := out.Xor(rhs); err != nil {
		return nil, err
	}
	return out, nil
}

// Not returns a new bitset holding the complement of b.
func Not(b *Bitset) (*Bitset, error) {
	out := b.Clone()
	if err := out.Not(); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone returns an independent copy of b with freshly allocated storage,
// or nil when b is invalid.
func (b *Bitset) Clone() *Bitset {
	if !b.valid() {
		return nil
	}
	bits := make([]bool, b.len)
	copy(bits, b.bits)
	return &Bitset{bits: bits, len: b.len}
}

// Equal reports whether b and other hold identical bit sequences. Two
// invalid bitsets compare equal; an invalid and a valid one do not.
func (b *Bitset) Equal(other *Bitset) bool {
	if !b.valid() || !other.valid() {
		return b.valid() == other.valid()
	}
	if b.len != other.len {
		return false
	}
	for i, bit := range b.bits {
		if bit != other.bits[i] {
			return false
		}
	}
	return true
}

func (b *Bitset) valid() bool {
	return b != nil && b.bits != nil
}

func checkOperands(lhs, rhs *Bitset) error {
	if !lhs.valid() || !rhs.valid() {
		return ErrNil
	}
	if lhs.len != rhs.len {
		return ErrLength
	}
	return nil
}
