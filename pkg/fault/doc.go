// Package fault provides the typed error model shared by the entire project.
//
// # Design Principles
//
// 1. Flat classification: every failure carries exactly one Kind; there is
// no inheritance between kinds, only the KindAny wildcard used by handlers
// 2. Interop: full support for Go 1.13+ error wrapping, so errors.Is and
// errors.As observe faults through arbitrary wrapping
// 3. Context: faults carry the operation being performed and optional
// structured metadata
// 4. Performance: lazy context initialization, no allocation on the happy path
//
// # Usage Patterns
//
// Creating and classifying faults:
//
//	return fault.New(fault.KindDivisionByZero, "divide", "Cannot divide by zero!")
//
//	if err := strconv.Atoi(s); err != nil {
//	    return fault.Wrap(err, fault.KindParseFailure, "parse")
//	}
//
// Checking faults:
//
//	if fault.IsKind(err, fault.KindResourceNotFound) {
//	    // handle missing resource
//	}
//
// Coercing arbitrary errors at a classification boundary:
//
//	f := fault.Adopt(err) // keeps an existing fault, else KindUnclassified
//
// Packages that need richer categories define their own kinds alongside the
// built-ins, following the UPPER_SNAKE_CASE convention.
package fault
