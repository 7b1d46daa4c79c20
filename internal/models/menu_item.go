package models

// MenuItem is a sellable catalog entry. ID is a positional rank, not a permanent
// identity: the catalog reassigns it when renumbering after a removal.
type MenuItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
