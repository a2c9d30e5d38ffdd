package dto

import "encoding/json"

// Optional wraps a patch field so that a field absent from the payload
// can be told apart from one explicitly set to null. Absent leaves the
// stored value untouched; null clears it.
type Optional[T any] struct {
	Set   bool // field was present in the payload
	Valid bool // value was non-null
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
