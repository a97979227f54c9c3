// Package validate provides chainable, immutable validators used to gate
// prompt submission.
//
// A validator is an ordered list of rules. Rules run in the order they were
// chained and validation short-circuits on the first failure, whose message
// becomes the result. A validator with no rules accepts every value.
//
// Chaining never mutates: each rule method returns a new validator, so a
// derived validator cannot affect the one it was built from.
//
//	port := validate.Number().Integer().Min(1).Max(65535)
//	if err := port.Validate(8080); err != nil {
//	    // err.Error() is the first failing rule's message
//	}
//
// Every built-in rule has a canonical message that can be overridden:
//
//	validate.String().MinLength(8, "Passwords need at least 8 characters")
package validate
