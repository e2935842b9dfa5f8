package logic

// Accessor reads the value a row holds under dataIndex.
// ok is false when the row has no such field.
type Accessor[R any] func(row R, dataIndex string) (value any, ok bool)

// KeyFunc returns the identity of a row. Two rows with the same key are the
// same row for selection purposes.
type KeyFunc[R any] func(row R) string
