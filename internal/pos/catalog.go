package pos

import "github.com/chrisdamba/restobill/internal/models"

// Catalog owns the set of sellable menu items, in insertion order. It is the
// only component allowed to assign or rewrite item ids.
type Catalog struct {
	items []models.MenuItem
}

// NewCatalog builds a catalog from the configured seed menu, assigning ids
// 1..N in the order given.
func NewCatalog(seed []models.SeedMenuItem) *Catalog {
	c := &Catalog{items: make([]models.MenuItem, 0, len(seed))}
	for _, s := range seed {
		c.Add(s.Name, s.Price)
	}
	return c
}

// List returns a snapshot of the catalog in insertion order.
func (c *Catalog) List() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) IsEmpty() bool {
	return len(c.items) == 0
}

// FindByID returns the first item with the given id. Ids are unique after any
// mutation, so first match is the only match.
func (c *Catalog) FindByID(id int) (models.MenuItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Add appends a new item with id max(existing ids, 0)+1 and returns it.
// Callers validate that price is non-negative before calling.
func (c *Catalog) Add(name string, price float64) models.MenuItem {
	maxID := 0
	for _, item := range c.items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	item := models.MenuItem{ID: maxID + 1, Name: name, Price: price}
	c.items = append(c.items, item)
	return item
}

// RemoveByID removes the first item with the given id and reports whether a
// removal happened. After a removal the surviving items are renumbered 1..N in
// insertion order, so ids stay dense with no gaps.
func (c *Catalog) RemoveByID(id int) bool {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.renumber()
			return true
		}
	}
	return false
}

func (c *Catalog) renumber() {
	for i := range c.items {
		c.items[i].ID = i + 1
	}
}
