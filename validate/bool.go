package validate

// BoolValidator is a rule chain over boolean values.
type BoolValidator struct {
	Validator[bool]
}

// Bool returns an empty boolean validator.
func Bool() BoolValidator {
	return BoolValidator{}
}

// Rule appends a predicate rule and keeps the bool-typed chain.
func (v BoolValidator) Rule(check func(bool) bool, message string) BoolValidator {
	return BoolValidator{v.Validator.Rule(check, message)}
}

// Refine appends a rule that reports its own message.
func (v BoolValidator) Refine(fn Rule[bool]) BoolValidator {
	return BoolValidator{v.Validator.Refine(fn)}
}
