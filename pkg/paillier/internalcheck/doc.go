// Package internalcheck holds static policy tests for the paillier packages.
//
// The tests load the packages with golang.org/x/tools/go/packages and walk
// their syntax trees looking for patterns that are unsafe in cryptographic
// code: byte-slice equality, hex formatting of values that may be secret, and
// non-cryptographic random sources. The package has no exported API.
package internalcheck
