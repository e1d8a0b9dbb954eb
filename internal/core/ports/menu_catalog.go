package ports

import (
	"burgerpos/internal/core/domain/model/menu"
)

// MenuCatalog is the read side of the menu. The catalog is loaded once at startup
// and never mutated afterwards, so it needs no unit of work.
type MenuCatalog interface {
	// Find returns the item with the exact name or an errs.ErrObjectNotFound error.
	Find(name string) (menu.MenuItem, error)

	// List returns every item in menu order.
	List() []menu.MenuItem
}
