// Package errors provides the error types shared by every mechanism
// validator and assembler.
//
// Each problem is an *Error with a Kind drawn from a closed enumeration, a
// bare message, a source Location and an optional suggestion. Validators
// collect errors into an *ErrorList instead of returning at the first one,
// so a single run reports everything wrong with a document.
//
// # Basic Usage
//
//	errs := errors.NewErrorList()
//	errs.AddError(errors.KindRequiredKeyNotFound, "Required key 'name' is missing.", loc)
//
//	if errs.HasKind(errors.KindRequiredKeyNotFound) {
//	    for _, line := range errs.Diagnostics() {
//	        fmt.Println(line)
//	    }
//	}
//
// Diagnostic renders "file:line:col error: message"; Error renders the
// multi-line block with context and suggestion used by the CLI.
package errors
