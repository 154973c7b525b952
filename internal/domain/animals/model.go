package animals

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownClass = errors.New("unknown animal class")
	ErrNotFound     = errors.New("animal not found")
)

// Class define la clase taxonómica del animal.
// @Enum mammal, bird, fish, reptile, amphibian, insect
type Class string

const (
	ClassMammal    Class = "mammal"
	ClassBird      Class = "bird"
	ClassFish      Class = "fish"
	ClassReptile   Class = "reptile"
	ClassAmphibian Class = "amphibian"
	ClassInsect    Class = "insect"
)

var knownClasses = map[Class]struct{}{
	ClassMammal:    {},
	ClassBird:      {},
	ClassFish:      {},
	ClassReptile:   {},
	ClassAmphibian: {},
	ClassInsect:    {},
}

// ParseClass normaliza (trim + lower) y valida la clase.
func ParseClass(s string) (Class, error) {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
	return c, nil
}

func (c Class) Valid() bool {
	_, ok := knownClasses[c]
	return ok
}

// Animal representa un registro del catálogo.
type Animal struct {
	ID string

	Name    string
	Species string // p.ej. "equus caballus"
	Class   Class

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMammal falla si la clase está vacía o no es conocida
// (registros importados de otra fuente pueden traer cualquier cosa).
func (a Animal) IsMammal() (bool, error) {
	if !a.Class.Valid() {
		return false, fmt.Errorf("%w: %q (animal %s)", ErrUnknownClass, string(a.Class), a.ID)
	}
	return a.Class == ClassMammal, nil
}
