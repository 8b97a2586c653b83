package valueparser

// ParsableType is a type constraint for values that can be parsed from a string.
type ParsableType interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool
}

// Unmarshalable is implemented by custom types parsed from their string form.
type Unmarshalable interface {
	Unmarshal(data string) error
}
