// Package rusty provides value types that describe the outcome of an
// operation without panics or sentinel return values for ordinary failures.
//
// Two families are available, each with zero to three declared error kinds:
// - Result, Result1, Result2, Result3: success carries a value of type T
// - Status, Status1, Status2, Status3: success carries nothing
//
// Outcomes are built from tags returned by the factory functions:
// - Ok/OkWith: success tag, without or with a value
// - Error/ErrorWith: error tag, without or with an error payload
//
// A tag (or a bare success value) is promoted into the declared outcome with
// the constructor named after the outcome type, e.g. Result1Err or Status2Err2.
// Each constructor accepts exactly one tag type, so a tag whose payload type
// is not one of the declared error kinds does not compile.
//
// Reading the wrong side of an outcome (Value on a failure, Err on a success,
// GetError with a kind that is not stored) is a programming error and panics
// with a *MisuseError. Failures of the operation itself are never panics.
package rusty
