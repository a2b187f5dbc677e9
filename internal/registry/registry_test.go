package registry

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dashcourse/internal/course"
)

func TestRegisterLookup(t *testing.T) {
	mode := course.Mode("test-lookup")
	Register(mode, "Test", (*course.Generator).Gravity)

	if !Exists(mode) {
		t.Fatal("Exists() should report a registered mode")
	}
	if Title(mode) != "Test" {
		t.Errorf("Title() = %q, expected %q", Title(mode), "Test")
	}

	build, err := Lookup(mode)
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}

	g := course.NewGenerator(course.DefaultGenParams(), rand.New(rand.NewSource(1)))
	c := build(g, 1, 3400, course.Motion{Speed: 192, Impulse: -426, Gravity: 670})
	if !c.Aligned() || c.Len() == 0 {
		t.Errorf("builder produced a bad course: %d obstacles, %d windows", len(c.Obstacles), len(c.Windows))
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no-such-mode"); err == nil {
		t.Error("Lookup() of an unknown mode should fail")
	}
	if Exists("no-such-mode") {
		t.Error("Exists() should be false for an unknown mode")
	}
	if Title("no-such-mode") != "no-such-mode" {
		t.Error("Title() should fall back to the mode name")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	mode := course.Mode("test-duplicate")
	Register(mode, "Once", (*course.Generator).Wave)

	defer func() {
		if recover() == nil {
			t.Error("registering a mode twice should panic")
		}
	}()
	Register(mode, "Twice", (*course.Generator).Wave)
}

func TestListSorted(t *testing.T) {
	Register("test-b", "B", (*course.Generator).Wave)
	Register("test-a", "A", (*course.Generator).Wave)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Mode > list[i].Mode {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Mode, list[i].Mode)
		}
	}
}
