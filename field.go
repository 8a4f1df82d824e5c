package slip39

import "errors"

// GF(2^8) arithmetic over the Rijndael reducing polynomial
// x^8 + x^4 + x^3 + x + 1, using the generator x+1 (3). exp/log tables are
// built once at init time the same way every pack implementation of this
// field does it: walk the multiplicative group by repeated multiplication
// by the generator, recording the discrete log as we go.
var (
	gfExp [255]byte
	gfLog [256]byte
)

func init() {
	x := byte(1)
	for i := 0; i < 255; i++ {
		gfExp[i] = x
		gfLog[x] = byte(i)
		x = gfMulByGenerator(x)
	}
	// gfLog[0] is left at its zero value; it is never a valid input.
}

// gfMulByGenerator multiplies a by the generator (x+1) and reduces modulo
// the field polynomial. Used only to build the tables above.
func gfMulByGenerator(a byte) byte {
	hiBitSet := a&0x80 != 0
	shifted := a << 1
	if hiBitSet {
		shifted ^= 0x1B // reduce by x^8 + x^4 + x^3 + x + 1 (mod x^8)
	}
	return shifted ^ a
}

// gfMul multiplies two field elements using the precomputed tables.
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(gfLog[a]) + int(gfLog[b])
	if sum >= 255 {
		sum -= 255
	}
	return gfExp[sum]
}

// interpolate evaluates, at field element x, the unique degree-(len(rows)-1)
// polynomial over GF(2^8) passing through each (row.x, row.data[j]) for
// every byte position j. All rows must share a byte length and distinct
// x-coordinates.
func interpolate(rows []rawShare, x byte) ([]byte, error) {
	if len(rows) == 0 {
		return nil, errors.New("interpolate: no rows given")
	}

	n := len(rows[0].data)
	for _, r := range rows {
		if len(r.data) != n {
			return nil, newMnemonicError("shares must all be the same length")
		}
	}

	seen := make(map[byte]bool, len(rows))
	for _, r := range rows {
		if seen[r.x] {
			return nil, newMnemonicError("share indices must be unique")
		}
		seen[r.x] = true
		if r.x == x {
			return secureBufferCopy(r.data), nil
		}
	}

	logs := make([]int, len(rows))
	for i, r := range rows {
		// L_i = sum_m log(x_m ^ x) - log(x_i ^ x) - sum_{m != i} log(x_i ^ x_m), mod 255
		var sumAll, sumOthers int
		for _, m := range rows {
			sumAll += int(gfLog[m.x^x])
		}
		for _, m := range rows {
			if m.x != r.x {
				sumOthers += int(gfLog[r.x^m.x])
			}
		}
		l := sumAll - int(gfLog[r.x^x]) - sumOthers
		l %= 255
		if l < 0 {
			l += 255
		}
		logs[i] = l
	}

	result := make([]byte, n)
	for j := 0; j < n; j++ {
		var acc byte
		for i, r := range rows {
			if r.data[j] == 0 {
				continue
			}
			e := int(gfLog[r.data[j]]) + logs[i]
			e %= 255
			acc ^= gfExp[e]
		}
		result[j] = acc
	}
	return result, nil
}
