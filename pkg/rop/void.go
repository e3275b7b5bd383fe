package rop

// Unit is the value carried by a successful VoidResult.
type Unit struct{}

// VoidResult is a Result whose success carries no information.
type VoidResult[E any] = Result[Unit, E]

// Void is a VoidResult with message errors.
type Void = VoidResult[Errors]

func Done[E any]() VoidResult[E] {
	return Ok[Unit, E](Unit{})
}

func VoidOk() Void {
	return Done[Errors]()
}

func VoidFail(msgs ...string) Void {
	return Failure[Unit](msgs...)
}
