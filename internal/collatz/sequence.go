package collatz

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultCap bounds the number of elements in a computed sequence.
	DefaultCap = 10000

	// RandomMax is the upper bound used by Random.
	RandomMax = 100000000

	maxOdd = (math.MaxInt64 - 1) / 3
)

// Sequence is an immutable Collatz trajectory. Index 0 is the start value.
type Sequence struct {
	values []int64
}

// NewSequence copies values into a Sequence. It does not check the parity
// rule; use Compute for that.
func NewSequence(values []int64) Sequence {
	v := make([]int64, len(values))
	copy(v, values)
	return Sequence{values: v}
}

func (s Sequence) Len() int { return len(s.values) }

func (s Sequence) IsEmpty() bool { return len(s.values) == 0 }

func (s Sequence) At(i int) int64 { return s.values[i] }

func (s Sequence) Start() int64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[0]
}

func (s Sequence) Last() int64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Steps is the number of map applications, Len()-1.
func (s Sequence) Steps() int {
	if len(s.values) == 0 {
		return 0
	}
	return len(s.values) - 1
}

// Values returns a copy of the elements.
func (s Sequence) Values() []int64 {
	v := make([]int64, len(s.values))
	copy(v, s.values)
	return v
}

// Floats returns elements [0, n) as float64 for plotting. n is clamped to Len.
func (s Sequence) Floats(n int) []float64 {
	if n > len(s.values) {
		n = len(s.values)
	}
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(s.values[i])
	}
	return out
}

func (s Sequence) Max() int64 {
	_, v := s.peak()
	return v
}

// MaxIndex is the first index holding Max.
func (s Sequence) MaxIndex() int {
	i, _ := s.peak()
	return i
}

func (s Sequence) peak() (int, int64) {
	idx, best := 0, int64(0)
	for i, v := range s.values {
		if v > best {
			idx, best = i, v
		}
	}
	return idx, best
}

// Next applies the Collatz map once.
func Next(n int64) (int64, error) {
	if n <= 0 {
		return 0, ErrInvalidInput
	}
	if n%2 == 0 {
		return n / 2, nil
	}
	if n > maxOdd {
		return 0, &OverflowError{Value: n}
	}
	return 3*n + 1, nil
}

// Compute returns the trajectory of start, stopping at 1 or when the sequence
// holds limit elements. truncated is true iff the cap was hit before reaching 1.
func Compute(start int64, limit int) (Sequence, bool, error) {
	if start <= 0 || limit <= 0 {
		return Sequence{}, false, ErrInvalidInput
	}

	values := make([]int64, 1, initialCapacity(limit))
	values[0] = start
	cur := start
	for cur != 1 && len(values) < limit {
		next, err := Next(cur)
		if err != nil {
			if oe, ok := err.(*OverflowError); ok {
				oe.Step = len(values) - 1
			}
			return Sequence{}, false, err
		}
		values = append(values, next)
		cur = next
	}
	return Sequence{values: values}, cur != 1, nil
}

func initialCapacity(limit int) int {
	if limit < 256 {
		return limit
	}
	return 256
}

// Random picks a start value uniformly in [1, RandomMax].
func Random(r *rand.Rand) int64 {
	return r.Int63n(RandomMax) + 1
}

// OpKind names which branch of the map produced the next value.
type OpKind int

const (
	Halve OpKind = iota
	Triple
)

func (k OpKind) String() string {
	if k == Halve {
		return "n/2"
	}
	return "3n+1"
}

// Op describes the transition from index i to i+1.
type Op struct {
	Kind OpKind
	From int64
	To   int64
}

func (o Op) String() string {
	if o.Kind == Halve {
		return fmt.Sprintf("f(n) = n/2 = %d / 2 = %d", o.From, o.To)
	}
	return fmt.Sprintf("f(n) = 3n+1 = 3 * %d + 1 = %d", o.From, o.To)
}

// Operation returns the transition leaving index i. ok is false at the last
// index or when i is out of range.
func Operation(s Sequence, i int) (Op, bool) {
	if i < 0 || i >= s.Len()-1 {
		return Op{}, false
	}
	from := s.values[i]
	kind := Triple
	if from%2 == 0 {
		kind = Halve
	}
	return Op{Kind: kind, From: from, To: s.values[i+1]}, true
}
