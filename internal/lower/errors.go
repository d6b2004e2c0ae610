package lower

// MalformedAccessError reports a type-constant access whose left-hand
// side is not a named type application. A well-formed tree never
// contains one; seeing it means an upstream transformation produced an
// inconsistent hint, so lowering of the enclosing declaration aborts.
type MalformedAccessError struct{}

func (e *MalformedAccessError) Error() string {
	return "type constant access must be rooted at a named type application"
}

// NewMalformedAccessError creates a MalformedAccessError.
func NewMalformedAccessError() *MalformedAccessError {
	return &MalformedAccessError{}
}
