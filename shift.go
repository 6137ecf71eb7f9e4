package bitset

// ShiftLeft performs a logical left shift by n positions: bit i takes the
// value formerly at i+n, bits shifted past index 0 are discarded and the
// vacated tail is filled with false. Shifting by the length or more clears
// every bit. Fails with ErrNil if b or its storage is absent.
func (b *Bitset) ShiftLeft(n uint) error {
	if !b.valid() {
		return ErrNil
	}
	if n == 0 {
		return nil
	}
	if n >= b.len {
		clear(b.bits)
		return nil
	}
	keep := b.len - n
	copy(b.bits, b.bits[n:])
	clear(b.bits[keep:])
	return nil
}

// ShiftRight performs a logical right shift by n positions: bit i takes the
// value formerly at i-n and the vacated head is filled with false. Same
// contract as ShiftLeft otherwise.
func (b *Bitset) ShiftRight(n uint) error {
	if !b.valid() {
		return ErrNil
	}
	if n == 0 {
		return nil
	}
	if n >= b.len {
		clear(b.bits)
		return nil
	}
	keep := b.len - n
	copy(b.bits[n:], b.bits[:keep])
	clear(b.bits[:n])
	return nil
}

// RotateLeft rotates the bits left by n mod Len() positions: bit i takes the
// value formerly at (i+n) mod Len(), with bits pushed past index 0 wrapping
// around to the tail. Fails with ErrNil if b or its storage is absent.
func (b *Bitset) RotateLeft(n uint) error {
	if !b.valid() {
		return ErrNil
	}
	n %= b.len
	if n == 0 {
		return nil
	}
	tmp := make([]bool, n)
	copy(tmp, b.bits[:n])
	copy(b.bits, b.bits[n:])
	copy(b.bits[b.len-n:], tmp)
	return nil
}

// RotateRight rotates the bits right by n mod Len() positions, the inverse
// of RotateLeft.
func (b *Bitset) RotateRight(n uint) error {
	if !b.valid() {
		return ErrNil
	}
	n %= b.len
	if n == 0 {
		return nil
	}
	keep := b.len - n
	tmp := make([]bool, n)
	copy(tmp, b.bits[keep:])
	copy(b.bits[n:], b.bits[:keep])
	copy(b.bits[:n], tmp)
	return nil
}

// Reset sets every bit to false. A no-op for an invalid bitset.
func (b *Bitset) Reset() {
	if b.valid() {
		clear(b.bits)
	}
}

// Free releases the owned bit storage, leaving b uninitialized. It is safe
// to call Free again and to reinitialize b afterwards via Init and friends.
// A no-op for a nil bitset.
func (b *Bitset) Free() {
	if b != nil {
		b.bits = nil
		b.len = 0
	}
}
