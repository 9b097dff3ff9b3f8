package reactive

import (
	"testing"
)

func TestCell(t *testing.T) {
	c := NewCell(1)
	if got := c.Get(); got != 1 {
		t.Errorf("Get() = %d, want 1", got)
	}
	v0 := c.Version()

	c.Set(2)
	if got := c.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
	if c.Version() <= v0 {
		t.Error("Set() did not bump the version")
	}

	c.Update(func(n int) int { return n * 10 })
	if got := c.Get(); got != 20 {
		t.Errorf("Get() = %d, want 20", got)
	}
}

func TestDerived_recomputesOncePerChange(t *testing.T) {
	src := NewCell([]int{1, 2, 3})
	var computations int
	sum := Derive(func() int {
		computations++
		total := 0
		for _, n := range src.Get() {
			total += n
		}
		return total
	}, src)

	if got := sum.Get(); got != 6 {
		t.Errorf("Get() = %d, want 6", got)
	}
	// repeated reads of an unchanged input must not recompute
	sum.Get()
	sum.Get()
	if computations != 1 {
		t.Errorf("computations = %d, want 1", computations)
	}

	src.Set([]int{10, 20})
	if got := sum.Get(); got != 30 {
		t.Errorf("Get() = %d, want 30", got)
	}
	sum.Get()
	if computations != 2 {
		t.Errorf("computations = %d, want 2", computations)
	}
}

func TestDerived_chained(t *testing.T) {
	src := NewCell(2)
	double := Derive(func() int { return src.Get() * 2 }, src)
	quad := Derive(func() int { return double.Get() * 2 }, double)

	if got := quad.Get(); got != 8 {
		t.Errorf("Get() = %d, want 8", got)
	}

	src.Set(5)
	if got := quad.Get(); got != 20 {
		t.Errorf("Get() = %d, want 20", got)
	}
}

// Two derived values reading the same cell through different paths must
// agree after a write; a read never observes a half-propagated state.
func TestDerived_diamondConsistency(t *testing.T) {
	src := NewCell(1)
	left := Derive(func() int { return src.Get() + 1 }, src)
	right := Derive(func() int { return src.Get() * 10 }, src)
	join := Derive(func() [2]int { return [2]int{left.Get(), right.Get()} }, left, right)

	src.Set(7)
	if got := join.Get(); got != [2]int{8, 70} {
		t.Errorf("Get() = %v, want [8 70]", got)
	}
}

func TestDerived_multipleInputs(t *testing.T) {
	a := NewCell(1)
	b := NewCell(2)
	var computations int
	sum := Derive(func() int {
		computations++
		return a.Get() + b.Get()
	}, a, b)

	if got := sum.Get(); got != 3 {
		t.Errorf("Get() = %d, want 3", got)
	}

	a.Set(10)
	b.Set(20)
	// both writes land before the next read; one recomputation covers them
	if got := sum.Get(); got != 30 {
		t.Errorf("Get() = %d, want 30", got)
	}
	if computations != 2 {
		t.Errorf("computations = %d, want 2", computations)
	}
}
