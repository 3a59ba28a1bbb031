// Package match compares names loosely. It backs the "did you mean" hints
// attached to resolution errors and the generator's near-duplicate warnings.
package match
