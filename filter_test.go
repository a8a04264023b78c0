// Core filter behaviour tests.
//
// The filter's contract has three load-bearing properties: no false
// negatives (an inserted item always reports present), monotonicity
// (bits only transition 0→1, so membership and confidence never decay),
// and idempotence (re-inserting changes nothing). These tests pin each
// property plus the probe-count derivation rules and the construction
// error taxonomy.
package floret

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// constHasher returns a fixed value regardless of input, giving tests
// exact control over probe positions.
type constHasher uint64

func (c constHasher) Hash(string) uint64 { return uint64(c) }

// TestAddContains verifies the no-false-negative guarantee: after Add,
// Contains must return true. Insertion sets every probe bit that
// Contains later checks, so a false negative here would mean the probe
// sequences diverged between the two operations.
func TestAddContains(t *testing.T) {
	f, err := New(100000, XXH3Low, XXH3High, WithK(8))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.AddAll("mustard", "ketchup", "relish")

	for _, item := range []string{"mustard", "ketchup", "relish"} {
		if !f.Contains(item) {
			t.Errorf("Contains(%q) = false after Add", item)
		}
		if c := f.Confidence(item); c != 1.0 {
			t.Errorf("Confidence(%q) = %v after Add, want 1.0", item, c)
		}
	}
}

// TestContainsMiss verifies that a never-inserted item reports absent
// in a lightly loaded filter. A false positive is allowed by the
// structure but is astronomically unlikely at this fill ratio; a
// systematic true here would mean probes are not landing where Add put
// them.
func TestContainsMiss(t *testing.T) {
	f, err := New(100000, XXH3Low, XXH3High, WithK(8))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.Add("mustard")

	if f.Contains("kendrick lamar") {
		t.Error("Contains = true for item never added")
	}
	if c := f.Confidence("kendrick lamar"); c == 1.0 {
		t.Error("Confidence = 1.0 for item never added")
	}
}

// TestIdempotence verifies that inserting the same item twice produces
// a bit-identical vector to inserting it once. Add only ever sets bits,
// and the probe sequence is deterministic, so the second call must be a
// no-op.
func TestIdempotence(t *testing.T) {
	once, _ := New(4096, XXH3Low, XXH3High, WithK(6))
	twice, _ := New(4096, XXH3Low, XXH3High, WithK(6))

	once.Add("encore")
	twice.Add("encore")
	twice.Add("encore")

	a, _ := once.MarshalBinary()
	b, _ := twice.MarshalBinary()
	if !bytes.Equal(a, b) {
		t.Error("double insertion changed the bit vector")
	}
}

// TestMonotonicity verifies that the set-bit count never decreases
// across insertions and that a measured confidence never goes down.
// Bits have no 1→0 transition, so any decrease would be a corruption
// bug in the bit vector.
func TestMonotonicity(t *testing.T) {
	f, _ := New(8192, XXH3Low, XXH3High, WithK(6))

	probe := "surveillance"
	prevBits := 0
	prevConf := 0.0
	for i := 0; i < 50; i++ {
		f.Add(fmt.Sprintf("item-%d", i))
		if n := f.SetBits(); n < prevBits {
			t.Fatalf("SetBits decreased: %d -> %d", prevBits, n)
		} else {
			prevBits = n
		}
		if c := f.Confidence(probe); c < prevConf {
			t.Fatalf("Confidence decreased: %v -> %v", prevConf, c)
		} else {
			prevConf = c
		}
	}
}

// TestAddAllOrderIndependent verifies that insertion order does not
// affect the final bit state — Add operations commute because each one
// only ORs bits in.
func TestAddAllOrderIndependent(t *testing.T) {
	items := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	forward, _ := New(4096, XXH3Low, XXH3High, WithK(5))
	backward, _ := New(4096, XXH3Low, XXH3High, WithK(5))

	forward.AddAll(items...)
	for i := len(items) - 1; i >= 0; i-- {
		backward.Add(items[i])
	}

	a, _ := forward.MarshalBinary()
	b, _ := backward.MarshalBinary()
	if !bytes.Equal(a, b) {
		t.Error("insertion order changed the bit vector")
	}
}

// TestAddLines verifies the reader-based batch form: one item per line,
// whitespace trimmed, blank lines skipped.
func TestAddLines(t *testing.T) {
	f, _ := New(4096, XXH3Low, XXH3High, WithK(5))
	input := "first\n  second  \n\n\nthird\n"
	if err := f.AddLines(bytes.NewReader([]byte(input))); err != nil {
		t.Fatalf("AddLines: %v", err)
	}
	for _, item := range []string{"first", "second", "third"} {
		if !f.Contains(item) {
			t.Errorf("Contains(%q) = false after AddLines", item)
		}
	}
}

// TestConfidenceQuantization verifies that confidence is exactly the
// fraction of set probe bits. Constant hashers pin the probes of any
// item to bits 0..7; with exactly 3 of those set, confidence must be
// exactly 0.375 — not approximately, since it is a ratio of small
// integers.
func TestConfidenceQuantization(t *testing.T) {
	f, err := New(64, constHasher(0), constHasher(1), WithK(8))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Probes for every item are (0 + i*1) % 64 = bits 0..7.
	f.bits.set(0)
	f.bits.set(1)
	f.bits.set(2)

	if c := f.Confidence("anything"); c != 0.375 {
		t.Errorf("Confidence = %v, want exactly 0.375", c)
	}
	if f.Contains("anything") {
		t.Error("Contains = true with only 3 of 8 probe bits set")
	}
}

// TestConfidenceContainsEquivalence verifies the documented identity:
// Confidence == 1.0 exactly when Contains == true. Both walk the same
// probe sequence, so divergence would mean one of them reduces indices
// differently.
func TestConfidenceContainsEquivalence(t *testing.T) {
	f, _ := New(2048, XXH3Low, XXH3High, WithK(7))
	f.AddAll("present", "also-present")

	for _, item := range []string{"present", "also-present", "absent", "missing"} {
		full := f.Confidence(item) == 1.0
		if full != f.Contains(item) {
			t.Errorf("%q: Confidence==1.0 is %v but Contains is %v", item, full, f.Contains(item))
		}
	}
}

// TestKDerivation pins the three probe-count paths: explicit k wins,
// an expected-item count derives floor(size/n * ln 2), and the fallback
// is floor(log2(size)). The boundary values come straight from the
// formulas: 1024/100 * ln 2 = 7.09 → 7, log2(1024) = 10.
func TestKDerivation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want int
	}{
		{"explicit", []Option{WithK(12)}, 12},
		{"explicit wins over expected", []Option{WithK(3), WithExpectedItems(100)}, 3},
		{"expected items", []Option{WithExpectedItems(100)}, 7},
		{"fallback log2", nil, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(1024, XXH3Low, XXH3High, tt.opts...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if f.K() != tt.want {
				t.Errorf("K() = %d, want %d", f.K(), tt.want)
			}
		})
	}
}

// TestKClampedToOne verifies the clamp on pathological derivations. A
// tiny filter with a huge expected load derives k = 0 from the formula;
// k = 0 would make every operation a no-op (Contains vacuously true,
// Add setting nothing), so the floor at 1 is load-bearing.
func TestKClampedToOne(t *testing.T) {
	f, err := New(4, XXH3Low, XXH3High, WithExpectedItems(1000))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.K() != 1 {
		t.Errorf("K() = %d, want clamp to 1", f.K())
	}

	// Fallback path: log2(1) = 0 must also clamp.
	f, err = New(1, XXH3Low, XXH3High)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.K() != 1 {
		t.Errorf("fallback K() = %d, want clamp to 1", f.K())
	}
}

// TestNewErrors verifies the construction error taxonomy: non-positive
// size is ErrFilterSize, a non-positive explicit k or expected-item
// count is ErrProbeCount, and missing hash functions are ErrNoHasher.
// These are the only failure paths — every query on a validly
// constructed filter is total.
func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		size int
		h1   Hasher
		h2   Hasher
		opts []Option
		want error
	}{
		{"zero size", 0, XXH3Low, XXH3High, nil, ErrFilterSize},
		{"negative size", -5, XXH3Low, XXH3High, nil, ErrFilterSize},
		{"zero k", 64, XXH3Low, XXH3High, []Option{WithK(0)}, ErrProbeCount},
		{"negative k", 64, XXH3Low, XXH3High, []Option{WithK(-3)}, ErrProbeCount},
		{"zero expected", 64, XXH3Low, XXH3High, []Option{WithExpectedItems(0)}, ErrProbeCount},
		{"negative expected", 64, XXH3Low, XXH3High, []Option{WithExpectedItems(-1)}, ErrProbeCount},
		{"nil first hasher", 64, nil, XXH3High, nil, ErrNoHasher},
		{"nil second hasher", 64, XXH3Low, nil, nil, ErrNoHasher},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.size, tt.h1, tt.h2, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("New = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestFillRatio verifies that FillRatio tracks SetBits/Size and starts
// at zero. The ratio feeds capacity decisions upstream; an off-by-eight
// (bits vs bytes) would misreport load by an order of magnitude.
func TestFillRatio(t *testing.T) {
	f, _ := New(64, constHasher(0), constHasher(1), WithK(8))
	if r := f.FillRatio(); r != 0 {
		t.Errorf("empty FillRatio = %v, want 0", r)
	}
	f.Add("x") // sets bits 0..7
	if r := f.FillRatio(); r != 8.0/64.0 {
		t.Errorf("FillRatio = %v, want 0.125", r)
	}
	if n := f.SetBits(); n != 8 {
		t.Errorf("SetBits = %d, want 8", n)
	}
}

// TestEstimateFalsePositiveRate sanity-checks the advisory estimator:
// zero for degenerate inputs, strictly increasing with load, below 1.
func TestEstimateFalsePositiveRate(t *testing.T) {
	if r := EstimateFalsePositiveRate(1024, 7, 0); r != 0 {
		t.Errorf("rate with no items = %v, want 0", r)
	}
	light := EstimateFalsePositiveRate(1024, 7, 50)
	heavy := EstimateFalsePositiveRate(1024, 7, 500)
	if !(light > 0 && heavy > light && heavy < 1) {
		t.Errorf("rates not ordered: light=%v heavy=%v", light, heavy)
	}
}
