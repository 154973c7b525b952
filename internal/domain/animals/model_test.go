package animals

import (
	"errors"
	"testing"
)

func TestAnimal_IsMammal(t *testing.T) {
	cases := []struct {
		class Class
		want  bool
	}{
		{ClassMammal, true},
		{ClassBird, false},
		{ClassFish, false},
		{ClassReptile, false},
		{ClassAmphibian, false},
		{ClassInsect, false},
	}

	for _, tc := range cases {
		got, err := Animal{ID: "a-1", Class: tc.class}.IsMammal()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.class, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.class, tc.want, got)
		}
	}
}

func TestAnimal_IsMammal_UnknownClassFails(t *testing.T) {
	for _, c := range []Class{"", "dragon", "Mammal"} {
		_, err := Animal{ID: "a-1", Class: c}.IsMammal()
		if !errors.Is(err, ErrUnknownClass) {
			t.Fatalf("class %q: expected ErrUnknownClass, got %v", c, err)
		}
	}
}

func TestParseClass_Normalizes(t *testing.T) {
	c, err := ParseClass("  Mammal ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != ClassMammal {
		t.Fatalf("expected mammal, got %q", c)
	}

	if _, err := ParseClass("unicorn"); !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
}
