// Package kernel holds the value objects shared by the menu and order models:
//
//   - UUID: opaque order identifier backed by github.com/google/uuid
//   - Money: non-negative decimal amount backed by github.com/shopspring/decimal
//
// Both are immutable, comparable with IsEqual, and reject their zero values in Validate.
package kernel
