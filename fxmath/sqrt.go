package fxmath

// Sqrt returns the square root of x, rounded to nearest at the final
// bit. Panics if x is negative; the representation has no value for a
// complex result.
func Sqrt(x int64) int64 {
	if x < 0 {
		panic("fxmath: negative argument to Sqrt")
	}

	num := uint64(x)
	result := uint64(0)

	// Highest power-of-four digit position.
	bit := uint64(1) << 62
	for bit > num {
		bit >>= 2
	}

	// Two scans keep every intermediate inside 64 bits: the integer
	// half of the root first, then the fractional half after the
	// remainder shifts up by the scale.
	for i := 0; i < 2; i++ {
		for bit != 0 {
			if num >= result+bit {
				num -= result + bit
				result = result>>1 + bit
			} else {
				result = result >> 1
			}
			bit >>= 2
		}

		if i == 0 {
			if num > 1<<32-1 {
				// The remainder would not survive the shift. Absorb a
				// half step into the result:
				//   num - (result + 0.5)^2 == (num - result)<<32 - 2^31
				num -= result
				num = num<<32 - 0x80000000
				result = result<<32 + 0x80000000
			} else {
				num <<= 32
				result <<= 32
			}
			bit = 1 << 30
		}
	}

	// Round up when the discarded remainder exceeds the root.
	if num > result {
		result++
	}
	return int64(result)
}
