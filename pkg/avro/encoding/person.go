package encoding

import (
	"github.com/Sokol111/avro-codec-bench/pkg/dataset"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const personRecordName = "Person"

// PersonToValue converts a typed record into its dynamic Value form.
func PersonToValue(p *dataset.Person) Value {
	email := Null()
	if p.Email != nil {
		email = Union("string", String(*p.Email))
	}

	phones := lo.Map(p.PhoneNumbers, func(n string, _ int) Value { return String(n) })

	return Record(personRecordName,
		Field{Name: "name", Value: String(p.Name)},
		Field{Name: "age", Value: Int(p.Age)},
		Field{Name: "email", Value: email},
		Field{Name: "phone_numbers", Value: Array(phones...)},
	)
}

// PersonFromValue converts a dynamic Value back into a typed record.
func PersonFromValue(v Value) (dataset.Person, error) {
	if v.Kind() != KindRecord {
		return dataset.Person{}, errors.Wrapf(ErrTypeMismatch, "expected record, got %s", v.Kind())
	}

	var p dataset.Person
	var ok bool

	name, _ := v.Field("name")
	if p.Name, ok = name.AsString(); !ok {
		return dataset.Person{}, fieldMismatch("name", "string", name)
	}

	age, _ := v.Field("age")
	if p.Age, ok = age.AsInt(); !ok {
		return dataset.Person{}, fieldMismatch("age", "int", age)
	}

	email, _ := v.Field("email")
	if !email.IsNull() {
		s, ok := email.Unwrap().AsString()
		if !ok {
			return dataset.Person{}, fieldMismatch("email", "string", email)
		}
		p.Email = &s
	}

	phones, _ := v.Field("phone_numbers")
	items, ok := phones.Items()
	if !ok {
		return dataset.Person{}, fieldMismatch("phone_numbers", "array", phones)
	}
	p.PhoneNumbers = make([]string, len(items))
	for i, item := range items {
		if p.PhoneNumbers[i], ok = item.AsString(); !ok {
			return dataset.Person{}, fieldMismatch("phone_numbers", "array of string", phones)
		}
	}

	return p, nil
}

func fieldMismatch(field, want string, got Value) error {
	return errors.Wrapf(ErrTypeMismatch, "field %q: expected %s, got %s", field, want, got.Kind())
}
