package filesystem

// Must returns v, panicking with err when it is not nil. It turns any
// (value, error) operation into its panicking form:
//
//	st := filesystem.Must(filesystem.Status(p))
//
// The panic value is the *errors.FilesystemError the operation returned.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// MustDo panics with err when it is not nil, for operations that return
// only an error.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}
