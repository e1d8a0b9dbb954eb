// Package order models a customer order and the customizable items inside it.
//
// The package includes:
//   - Item: a clone of a menu template with its own ingredient list and the
//     ingredients the customer added or removed
//   - Order: the aggregate root holding items in insertion order, the optional
//     customer name and the lifecycle status
//   - Status: Open -> Submitted -> Completed
//   - Group: one distinct item configuration and how many times it was ordered
//
// Key business rules:
//   - Two items are equal when name, ingredients and both modification sets match;
//     the order in which modifications were applied never matters
//   - An ingredient cannot be added twice nor removed twice
//   - Items are sealed when appended to an order; to change one, remove it and add
//     a freshly modified clone
//   - Items can only be added or removed while the order is Open
//   - Modifications never change an item's price
package order
