package option

import "encoding/json"

// Option holds a value that may be absent. The zero value holds none.
type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

func (x Option[T]) IsSome() bool {
	return x.isSome
}

func (x Option[T]) IsNone() bool {
	return !x.isSome
}

func (x Option[T]) Get() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}

// MarshalJSON encodes None as null.
func (x Option[T]) MarshalJSON() ([]byte, error) {
	if !x.isSome {
		return []byte("null"), nil
	}
	return json.Marshal(x.value)
}

// MarshalYAML encodes None as null.
func (x Option[T]) MarshalYAML() (interface{}, error) {
	if !x.isSome {
		return nil, nil
	}
	return x.value, nil
}
