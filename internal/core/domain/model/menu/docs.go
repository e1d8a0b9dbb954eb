// Package menu holds the catalog of burgers that can be ordered.
//
// A MenuItem is an immutable template: name, description, price and a canonical,
// ascending ingredient list. Catalog keeps templates keyed by name in the order
// they were added. Orders never reference a MenuItem directly; they clone it into
// an order.Item and customize the clone.
package menu
