package geom

// ValidationError reports a rejected input: a polygon with too few
// vertices or an unknown reflection axis.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// DomainError reports an operation that is mathematically undefined for
// its input, such as inverting a singular matrix.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}
