package bitset

import "errors"

var (
	// ErrNil is returned when a required bitset, its storage or a source
	// argument is absent, or when a zero-length construction is requested.
	// An uninitialized or freed bitset has no storage and fails with ErrNil.
	ErrNil = errors.New("nil bitset, storage or source")

	// ErrAlloc is returned when bit storage cannot be acquired, i.e. when
	// the requested size is not representable.
	ErrAlloc = errors.New("cannot acquire bit storage")

	// ErrLength is returned by binary operations whose operands have
	// different lengths. The operands are left unmodified.
	ErrLength = errors.New("operand length mismatch")
)
