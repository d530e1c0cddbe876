// Package dataset produces the deterministic synthetic records fed to both codec variants.
//
// Every record is a pure function of its index, so two runs (or two programs)
// asked for the same count encode byte-identical inputs.
package dataset

import (
	"fmt"

	"github.com/samber/lo"
)

// Person is the typed in-memory form of the Person Avro record.
// The avro tags bind fields to the schema for the direct codec path.
type Person struct {
	Name         string   `avro:"name"`
	Age          int32    `avro:"age"`
	Email        *string  `avro:"email"`
	PhoneNumbers []string `avro:"phone_numbers"`
}

const (
	baseAge  = 20
	ageSpan  = 60
	emailMod = 3
	phoneMod = 3
)

// NewPerson returns the record for index i.
//
//   - age is 20 + i%60
//   - email is set only when i%3 == 0
//   - there are 1 + i%3 phone numbers, entry j is "+1-555-" followed by i*10+j padded to 4 digits
func NewPerson(i int) Person {
	p := Person{
		Name: fmt.Sprintf("Person_%d", i),
		Age:  int32(baseAge + i%ageSpan),
	}

	if i%emailMod == 0 {
		p.Email = lo.ToPtr(fmt.Sprintf("person%d@example.com", i))
	}

	p.PhoneNumbers = lo.Times(1+i%phoneMod, func(j int) string {
		return fmt.Sprintf("+1-555-%04d", i*10+j)
	})

	return p
}

// Generate returns the records for indexes 0..n-1 in order.
// A non-positive n yields an empty slice.
func Generate(n int) []Person {
	if n <= 0 {
		return []Person{}
	}
	return lo.Times(n, NewPerson)
}
