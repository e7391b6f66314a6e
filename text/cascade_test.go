package text

import (
	"errors"
	"slices"
	"testing"
)

func names(fonts []Font) []string {
	out := make([]string, len(fonts))
	for i, f := range fonts {
		out[i] = f.Name()
	}
	return out
}

func TestCascadeOrderedFor(t *testing.T) {
	a, b, c := newFake("a", coversAll), newFake("b", coversAll), newFake("c", coversAll)
	cascade := NewCascade(a, b, c)

	tests := []struct {
		preferred int
		want      []string
	}{
		{0, []string{"a", "b", "c"}},
		{1, []string{"a", "b", "c"}},
		{2, []string{"b", "a", "c"}},
		{3, []string{"c", "a", "b"}},
		{4, []string{"a", "b", "c"}},
		{-1, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		order := cascade.OrderedFor(tt.preferred)
		if got := names(order.Fonts()); !slices.Equal(got, tt.want) {
			t.Errorf("OrderedFor(%d) = %v, want %v", tt.preferred, got, tt.want)
		}
		if order.Len() != 3 {
			t.Errorf("OrderedFor(%d).Len() = %d", tt.preferred, order.Len())
		}
		if got := names(cascade.Fonts()); !slices.Equal(got, []string{"a", "b", "c"}) {
			t.Fatalf("OrderedFor(%d) changed the cascade to %v", tt.preferred, got)
		}
	}
}

func TestOrderAllStopsEarly(t *testing.T) {
	cascade := NewCascade(newFake("a", coversAll), newFake("b", coversAll), newFake("c", coversAll))

	var seen []string
	for f := range cascade.OrderedFor(2).All() {
		seen = append(seen, f.Name())
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []string{"b", "a"}) {
		t.Errorf("seen = %v", seen)
	}
}

func TestOrderIsASnapshot(t *testing.T) {
	cascade := NewCascade(newFake("a", coversAll))
	order := cascade.OrderedFor(0)

	if err := cascade.Add(newFake("b", coversAll)); err != nil {
		t.Fatal(err)
	}
	if order.Len() != 1 {
		t.Errorf("order grew to %d fonts after Add", order.Len())
	}
}

func TestCascadeAddInsert(t *testing.T) {
	cascade := NewCascade(nil, newFake("a", coversAll), nil)
	if cascade.Len() != 1 {
		t.Fatalf("NewCascade kept nil fonts, Len() = %d", cascade.Len())
	}

	if err := cascade.Add(newFake("c", coversAll)); err != nil {
		t.Fatal(err)
	}
	if err := cascade.Insert(1, newFake("b", coversAll)); err != nil {
		t.Fatal(err)
	}
	if err := cascade.Insert(0, newFake("icons", coversAll)); err != nil {
		t.Fatal(err)
	}
	if err := cascade.Insert(cascade.Len(), newFake("last", coversAll)); err != nil {
		t.Fatal(err)
	}

	want := []string{"icons", "a", "b", "c", "last"}
	if got := names(cascade.Fonts()); !slices.Equal(got, want) {
		t.Errorf("Fonts() = %v, want %v", got, want)
	}

	if err := cascade.Add(nil); !errors.Is(err, ErrNilFont) {
		t.Errorf("Add(nil) = %v, want ErrNilFont", err)
	}
	if err := cascade.Insert(0, nil); !errors.Is(err, ErrNilFont) {
		t.Errorf("Insert(0, nil) = %v, want ErrNilFont", err)
	}
	for _, i := range []int{-1, cascade.Len() + 1} {
		if err := cascade.Insert(i, newFake("x", coversAll)); !errors.Is(err, ErrFontIndex) {
			t.Errorf("Insert(%d) = %v, want ErrFontIndex", i, err)
		}
	}
}

func TestCascadeFontsIsACopy(t *testing.T) {
	cascade := NewCascade(newFake("a", coversAll), newFake("b", coversAll))
	fonts := cascade.Fonts()
	fonts[0] = newFake("z", coversAll)

	if cascade.Fonts()[0].Name() != "a" {
		t.Error("Fonts() exposes the cascade's storage")
	}
}

func TestCascadeClose(t *testing.T) {
	errA := errors.New("a failed")
	a := &closingFont{fakeFont: newFake("a", coversAll), err: errA}
	b := &closingFont{fakeFont: newFake("b", coversAll)}
	plain := newFake("plain", coversAll)

	cascade := NewCascade(a, plain, b)
	err := cascade.Close()

	if !errors.Is(err, errA) {
		t.Errorf("Close() = %v, want it to wrap %v", err, errA)
	}
	if a.closed != 1 || b.closed != 1 {
		t.Errorf("closed a=%d b=%d, want 1 each", a.closed, b.closed)
	}
	if cascade.Len() != 0 {
		t.Errorf("Len() after Close = %d", cascade.Len())
	}
	if err := cascade.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
