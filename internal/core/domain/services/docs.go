// Package services holds domain logic that spans more than one aggregate.
//
// OrderSummarizer joins an Order with the menu Catalog to build the per-group view
// shown on the building panel and on the active-order board. It is read-only and
// stateless; callers recompute a summary after every change instead of caching it.
package services
