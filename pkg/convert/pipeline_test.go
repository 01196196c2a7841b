package convert

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/vango-dev/utemplates/internal/errors"
)

func percent() Conversion {
	return Conversion{Name: "app.percent", Fn: For(func(n int) (any, error) {
		return strconv.Itoa(n) + "%", nil
	})}
}

func TestPipelineZeroValuePassesThrough(t *testing.T) {
	var p Pipeline
	for _, v := range []any{nil, 1, "x", []int{1}} {
		out, err := p.Convert(v)
		if err != nil {
			t.Fatalf("Convert(%v) error: %v", v, err)
		}
		if fmt.Sprint(out) != fmt.Sprint(v) {
			t.Errorf("Convert(%v) = %v, want unchanged", v, out)
		}
	}
}

func TestPipelineNumericConversion(t *testing.T) {
	p := NewPipeline(percent())
	out, err := p.Convert(42)
	if err != nil {
		t.Fatal(err)
	}
	if out != "42%" {
		t.Errorf("Convert(42) = %v, want 42%%", out)
	}

	out, err = p.Convert("42")
	if err != nil {
		t.Fatal(err)
	}
	if out != "42" {
		t.Errorf("string should pass through, got %v", out)
	}
}

func TestPipelineFirstMatchWins(t *testing.T) {
	upper := Conversion{Name: "strings", Fn: For(func(s string) (any, error) {
		return "S:" + s, nil
	})}
	all := Conversion{Name: "all", Fn: Any(func(v any) any {
		return fmt.Sprintf("A:%v", v)
	})}
	p := NewPipeline(upper, all)

	out, _ := p.Convert("x")
	if out != "S:x" {
		t.Errorf("string leaf = %v, want only first conversion applied", out)
	}
	out, _ = p.Convert(7)
	if out != "A:7" {
		t.Errorf("int leaf = %v, want second conversion", out)
	}
}

func TestPipelineErrorPropagates(t *testing.T) {
	boom := stderrors.New("boom")
	failing := Conversion{Name: "app.fail", Fn: func(v any) (any, error) { return nil, boom }}
	never := Conversion{Name: "app.never", Fn: Any(func(v any) any {
		t.Error("later conversion must not run after a failure")
		return v
	})}
	p := NewPipeline(failing, never)

	_, err := p.Convert(3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, errors.ErrConversion) {
		t.Errorf("error %v is not a conversion error", err)
	}
	if !stderrors.Is(err, boom) {
		t.Errorf("error %v does not wrap cause", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("expected *errors.Error")
	}
	if e.Conversion != "app.fail" || e.Value != 3 {
		t.Errorf("Conversion=%q Value=%v", e.Conversion, e.Value)
	}
}

func TestPipelinePanicBecomesConversionError(t *testing.T) {
	panicking := Conversion{Name: "app.panic", Fn: func(v any) (any, error) {
		var m map[string]int
		m["x"] = 1
		return nil, nil
	}}
	p := NewPipeline(panicking)

	var (
		out any
		err error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Convert panicked: %v", r)
			}
		}()
		out, err = p.Convert("leaf")
	}()
	if out != nil {
		t.Errorf("out = %v, want nil", out)
	}
	if !stderrors.Is(err, errors.ErrConversion) {
		t.Fatalf("error %v is not a conversion error", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("expected *errors.Error")
	}
	if e.Code != "E200" || e.Conversion != "app.panic" || e.Value != "leaf" {
		t.Errorf("Code=%q Conversion=%q Value=%v", e.Code, e.Conversion, e.Value)
	}
}

func TestPipelineWrappedNotApplicableSkips(t *testing.T) {
	skip := Conversion{Name: "skip", Fn: func(v any) (any, error) {
		return nil, fmt.Errorf("only maps: %w", ErrNotApplicable)
	}}
	p := NewPipeline(skip, percent())
	out, err := p.Convert(1)
	if err != nil || out != "1%" {
		t.Errorf("Convert(1) = %v, %v", out, err)
	}
}

func TestNewPipelineDropsNilFuncs(t *testing.T) {
	p := NewPipeline(Conversion{Name: "nil"}, percent())
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
	if names := p.Names(); len(names) != 1 || names[0] != "app.percent" {
		t.Errorf("Names() = %v", names)
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	r.Register("app.percent", percent().Fn)

	p, err := r.Resolve([]string{"app.percent"})
	if err != nil {
		t.Fatal(err)
	}
	if out, _ := p.Convert(5); out != "5%" {
		t.Errorf("resolved pipeline Convert(5) = %v", out)
	}

	_, err = r.Resolve([]string{"app.percent", "app.missing"})
	if !stderrors.Is(err, errors.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	var e *errors.Error
	stderrors.As(err, &e)
	if e.Code != "E121" || e.Path != "app.missing" {
		t.Errorf("Code=%q Path=%q", e.Code, e.Path)
	}
}

func TestRegistryResolvedPipelineIsFrozen(t *testing.T) {
	r := NewRegistry()
	r.Register("f", Any(func(any) any { return "old" }))
	p, _ := r.Resolve([]string{"f"})
	r.Register("f", Any(func(any) any { return "new" }))

	if out, _ := p.Convert(1); out != "old" {
		t.Errorf("pipeline observed re-registration: %v", out)
	}
}

func TestRegistryConcurrentRegister(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("f%d", i), Any(func(v any) any { return v }))
			r.Lookup("f0")
		}(i)
	}
	wg.Wait()
	if len(r.Names()) != 20 {
		t.Errorf("Names() len = %d, want 20", len(r.Names()))
	}
}

type celsius float64

func (c celsius) String() string { return strconv.FormatFloat(float64(c), 'f', 1, 64) + "°C" }

type gauge struct{ v int }

func (g *gauge) String() string { return strconv.Itoa(g.v) }

func TestBuiltins(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want any
	}{
		{TimeRFC3339, ts, "2024-05-01T12:00:00Z"},
		{Stringer, celsius(21.5), "21.5°C"},
		{Stringer, &gauge{v: 3}, "3"},
		{Stringer, (*gauge)(nil), ""},
		{FloatCompact, 0.1, "0.1"},
		{FloatCompact, float32(2.5), "2.5"},
		{BoolYesNo, true, "yes"},
		{BoolYesNo, false, "no"},
		{BytesUTF8, []byte("hi"), "hi"},
		{NilEmpty, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Default.Resolve([]string{tt.name})
			if err != nil {
				t.Fatal(err)
			}
			out, err := p.Convert(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("Convert(%v) = %v, want %v", tt.in, out, tt.want)
			}
		})
	}
}

func TestBuiltinsDeclineOtherKinds(t *testing.T) {
	p, err := Default.Resolve([]string{TimeRFC3339, FloatCompact, BoolYesNo, BytesUTF8, NilEmpty})
	if err != nil {
		t.Fatal(err)
	}
	out, err := p.Convert(7)
	if err != nil || out != 7 {
		t.Errorf("Convert(7) = %v, %v, want unchanged", out, err)
	}
}
