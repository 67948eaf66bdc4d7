package scorer

import (
	goerrors "errors"
	"testing"

	"github.com/wippyai/scorer-runtime/encstr"
	"github.com/wippyai/scorer-runtime/errors"
	"github.com/wippyai/scorer-runtime/hostabi"
)

// fakeCached scores by candidate length and records lifecycle calls.
type fakeCached struct {
	closed   int
	ratioErr error
	panicVal any
}

func (c *fakeCached) ratio(n int) (float64, error) {
	if c.panicVal != nil {
		panic(c.panicVal)
	}
	if c.ratioErr != nil {
		return 0, c.ratioErr
	}
	return float64(n), nil
}

func (c *fakeCached) Ratio8(u []uint8, _ float64) (float64, error)   { return c.ratio(len(u)) }
func (c *fakeCached) Ratio16(u []uint16, _ float64) (float64, error) { return c.ratio(len(u)) }
func (c *fakeCached) Ratio32(u []uint32, _ float64) (float64, error) { return c.ratio(len(u)) }
func (c *fakeCached) Ratio64(u []uint64, _ float64) (float64, error) { return c.ratio(len(u)) }
func (c *fakeCached) Close()                                         { c.closed++ }

// fakeFamily hands out a prepared cached scorer and counts constructions.
type fakeFamily struct {
	cached *fakeCached
	built  int
	newErr error
}

func (f *fakeFamily) build() (Cached, error) {
	if f.newErr != nil {
		return nil, f.newErr
	}
	f.built++
	return f.cached, nil
}

func (f *fakeFamily) U8([]uint8) (Cached, error)   { return f.build() }
func (f *fakeFamily) U16([]uint16) (Cached, error) { return f.build() }
func (f *fakeFamily) U32([]uint32) (Cached, error) { return f.build() }
func (f *fakeFamily) U64([]uint64) (Cached, error) { return f.build() }

func TestFunc_Lifecycle(t *testing.T) {
	host := hostabi.NewLocalRuntime()
	cached := &fakeCached{}
	fam := &fakeFamily{cached: cached}
	f := New(host, fam)

	if !f.Init([]encstr.String{encstr.Text("abc")}) {
		t.Fatal("Init should succeed with one pattern")
	}
	if fam.built != 1 {
		t.Fatalf("expected one construction, got %d", fam.built)
	}

	var score float64
	cand := encstr.Text("wxyz")
	for i := 0; i < 3; i++ {
		if !f.CallF64(&cand, 0, &score) {
			t.Fatal("CallF64 should succeed")
		}
		if score != 4 {
			t.Fatalf("expected score 4, got %v", score)
		}
	}

	f.Dtor()
	if cached.closed != 1 {
		t.Fatalf("Close ran %d times, want 1", cached.closed)
	}
}

func TestFunc_InitRejectsPatternCount(t *testing.T) {
	for _, n := range []int{0, 2, 3} {
		host := hostabi.NewLocalRuntime()
		fam := &fakeFamily{cached: &fakeCached{}}
		f := New(host, fam)

		patterns := make([]encstr.String, n)
		for i := range patterns {
			patterns[i] = encstr.Text("p")
		}

		if f.Init(patterns) {
			t.Fatalf("Init must fail for pattern count %d", n)
		}
		if fam.built != 0 {
			t.Fatalf("no algorithm state may be allocated for count %d", n)
		}
		cat, _, pending := host.Err()
		if !pending || cat != hostabi.CatRuntime {
			t.Fatalf("expected a translated logic failure, got %v pending=%v", cat, pending)
		}
	}
}

func TestFunc_InitTranslatesConstructionFailure(t *testing.T) {
	host := hostabi.NewLocalRuntime()
	fam := &fakeFamily{newErr: errors.Value(errors.PhaseConstruct, "bad parameter")}
	f := New(host, fam)

	if f.Init([]encstr.String{encstr.Text("abc")}) {
		t.Fatal("Init should report the construction failure")
	}
	cat, msg, pending := host.Err()
	if !pending || cat != hostabi.CatValue || msg != "bad parameter" {
		t.Fatalf("unexpected host error: %v %q pending=%v", cat, msg, pending)
	}
}

func TestFunc_CallF64_FailureLeavesOutUnwritten(t *testing.T) {
	host := hostabi.NewLocalRuntime()
	cached := &fakeCached{ratioErr: errors.Index(errors.PhaseInvoke, "candidate out of range")}
	f := New(host, &fakeFamily{cached: cached})
	if !f.Init([]encstr.String{encstr.Text("abc")}) {
		t.Fatal("Init failed")
	}

	score := -1.0
	cand := encstr.Text("xy")
	if f.CallF64(&cand, 0, &score) {
		t.Fatal("CallF64 should report the failure")
	}
	if score != -1.0 {
		t.Fatalf("out parameter must stay unwritten, got %v", score)
	}
	cat, _, pending := host.Err()
	if !pending || cat != hostabi.CatIndex {
		t.Fatalf("expected an index error, got %v", cat)
	}
}

func TestFunc_CallF64_TrapsPanic(t *testing.T) {
	host := hostabi.NewLocalRuntime()
	cached := &fakeCached{panicVal: goerrors.New("algorithm exploded")}
	f := New(host, &fakeFamily{cached: cached})
	if !f.Init([]encstr.String{encstr.Text("abc")}) {
		t.Fatal("Init failed")
	}

	var score float64
	cand := encstr.Text("xy")
	if f.CallF64(&cand, 0, &score) {
		t.Fatal("a panicking algorithm must surface as false")
	}
	cat, msg, pending := host.Err()
	if !pending || cat != hostabi.CatRuntime || msg != "algorithm exploded" {
		t.Fatalf("unexpected host error: %v %q", cat, msg)
	}
}

func TestFunc_CallF64_InvalidCandidateWidth(t *testing.T) {
	host := hostabi.NewLocalRuntime()
	f := New(host, &fakeFamily{cached: &fakeCached{}})
	if !f.Init([]encstr.String{encstr.Text("abc")}) {
		t.Fatal("Init failed")
	}

	var score float64
	cand := encstr.String{Width: 5, Len: 1}
	if f.CallF64(&cand, 0, &score) {
		t.Fatal("an invalid width tag must fail the call")
	}
	cat, _, pending := host.Err()
	if !pending || cat != hostabi.CatRuntime {
		t.Fatalf("expected a translated dispatch failure, got %v", cat)
	}
}
