// Package kernel provides the primitives shared by every aggregate of the
// ordering domain.
//
// The package includes:
//   - Money: exact decimal monetary amounts (github.com/shopspring/decimal)
//   - OrderID: globally unique order identifiers
//
// Monetary values are never represented as floats. Price checks throughout
// the domain compare Money values with exact equality.
package kernel
