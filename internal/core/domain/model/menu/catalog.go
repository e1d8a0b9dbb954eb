package menu

import (
	"burgerpos/internal/pkg/errs"
)

// Catalog is the set of MenuItems on offer, unique by name, listed in insertion order.
// It is not safe for concurrent use; callers serialize access. The zero value is an
// empty catalog ready to use.
type Catalog struct {
	items map[string]MenuItem
	order []string
}

func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]MenuItem)}
}

// Add registers item. A name already in the catalog is rejected with
// errs.ErrObjectAlreadyExists.
func (c *Catalog) Add(item MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, exists := c.items[item.Name()]; exists {
		return errs.NewObjectAlreadyExistsError("name", item.Name())
	}
	if c.items == nil {
		c.items = make(map[string]MenuItem)
	}
	c.items[item.Name()] = item
	c.order = append(c.order, item.Name())
	return nil
}

// Remove drops the item called name. Unknown names are ignored.
func (c *Catalog) Remove(name string) {
	if _, exists := c.items[name]; !exists {
		return
	}
	delete(c.items, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Catalog) Find(name string) (MenuItem, error) {
	item, ok := c.items[name]
	if !ok {
		return MenuItem{}, errs.NewObjectNotFoundError("menuItem", name)
	}
	return item, nil
}

// List returns the items in the order they were added.
func (c *Catalog) List() []MenuItem {
	list := make([]MenuItem, 0, len(c.order))
	for _, name := range c.order {
		list = append(list, c.items[name])
	}
	return list
}

func (c *Catalog) Len() int {
	return len(c.order)
}
