package pointers

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

func Uint(v uint) *uint       { return &v }
func String(v string) *string { return &v }
