package verify

import "slices"

// Result is the immutable outcome of one verification call.
type Result struct {
	status Status
	scope  Scope
	errors []Error
}

// Status returns the overall outcome.
func (r Result) Status() Status { return r.status }

// Scope returns the scope that produced this result.
func (r Result) Scope() Scope { return r.scope }

// Errors returns the classified defects in the order they were reported.
func (r Result) Errors() []Error { return slices.Clone(r.errors) }

// OK reports whether the verification found no defects.
func (r Result) OK() bool { return r.status == StatusOK }

// ResultBuilder accumulates errors before finalizing a Result.
type ResultBuilder struct {
	status Status
	scope  Scope
	errors []Error
}

// WithStatusAndScope starts a builder with an initial status and the scope
// being verified.
func WithStatusAndScope(status Status, scope Scope) *ResultBuilder {
	return &ResultBuilder{status: status, scope: scope}
}

// Error appends one defect, preserving insertion order.
func (b *ResultBuilder) Error(err Error) *ResultBuilder {
	b.errors = append(b.errors, err)
	return b
}

// Build finalizes the Result. Any accumulated error forces StatusError,
// regardless of the initial status.
func (b *ResultBuilder) Build() Result {
	status := b.status
	if len(b.errors) > 0 {
		status = StatusError
	}
	return Result{
		status: status,
		scope:  b.scope,
		errors: slices.Clone(b.errors),
	}
}
