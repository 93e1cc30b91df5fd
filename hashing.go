// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// hashTriple computes the unique-table bucket for (v, p0, p1) given the
// current arena capacity. Because the modulus equals the arena capacity, any
// capacity change invalidates every existing hash and forces a full rehash
// (see arena.rehashAll).
func hashTriple(v, p0, p1 int32, capacity int) int32 {
	h := int64(v)*12582917 + int64(p0)*4256249 + int64(p1)*741457
	h %= int64(capacity)
	if h < 0 {
		h += int64(capacity)
	}
	return int32(h)
}
