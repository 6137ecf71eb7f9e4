/*
Fixed-size bit vector (aka bitset) with in-place logical, shift and rotate
operations and explicit error reporting.

	b, _ := bitset.NewFromBitString("1100", 4) // [4]{1100}
	b.ShiftLeft(1)                             // [4]{1000}
	b.RotateRight(2)                           // [4]{0010}
	b.Not()                                    // [4]{1101}
	b.Reset()                                  // [4]{0000}
	b.Free()
*/
package bitset
