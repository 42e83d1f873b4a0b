package geotrack

import "math"

const (
	subtractiveMBig  = math.MaxInt32
	subtractiveMSeed = 161803398
)

// subtractiveSource is Knuth's subtractive generator (TAOCP vol. 2,
// 3.6) with the seeding used by the .NET seeded Random. Given the same seed
// it yields the same sequence of doubles as System.Random.
//
// A subtractiveSource is not safe for concurrent use; create one per call.
type subtractiveSource struct {
	seeds  [56]int32
	inext  int
	inextp int
}

func newSubtractiveSource(seed int32) *subtractiveSource {
	s := &subtractiveSource{}

	subtraction := seed
	if seed == math.MinInt32 {
		subtraction = math.MaxInt32
	} else if seed < 0 {
		subtraction = -seed
	}

	mj := int32(subtractiveMSeed) - subtraction
	s.seeds[55] = mj
	mk := int32(1)
	ii := 0
	for i := 1; i < 55; i++ {
		ii += 21
		if ii >= 55 {
			ii -= 55
		}
		s.seeds[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += subtractiveMBig
		}
		mj = s.seeds[ii]
	}

	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			n := i + 30
			if n >= 55 {
				n -= 55
			}
			s.seeds[i] -= s.seeds[1+n]
			if s.seeds[i] < 0 {
				s.seeds[i] += subtractiveMBig
			}
		}
	}

	s.inext = 0
	s.inextp = 21

	return s
}

func (s *subtractiveSource) sample() int32 {
	inext := s.inext + 1
	if inext >= 56 {
		inext = 1
	}
	inextp := s.inextp + 1
	if inextp >= 56 {
		inextp = 1
	}

	v := s.seeds[inext] - s.seeds[inextp]
	if v == subtractiveMBig {
		v--
	}
	if v < 0 {
		v += subtractiveMBig
	}

	s.seeds[inext] = v
	s.inext = inext
	s.inextp = inextp

	return v
}

// Float64 returns a value in [0, 1).
func (s *subtractiveSource) Float64() float64 {
	return float64(s.sample()) * (1.0 / subtractiveMBig)
}
