// Package errs provides the typed error values shared by the domain model,
// the workflow handlers and the persistence adapters.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: a referenced row or aggregate does not exist
//
// Each error type follows the same pattern: a sentinel variable, a struct
// carrying the details, constructors with and without a cause, Error() for
// formatting and Unwrap() returning the sentinel so errors.Is works across
// wrapping layers.
package errs
