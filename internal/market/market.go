// Package market holds the static dark-market catalog the cart references.
package market

// Item is one purchasable curiosity. Prices are in souls.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       int
}

var catalog = []Item{
	{
		ID:          "cursed-mask",
		Name:        "Cursed Mask",
		Description: "An ancient mask that reveals hidden truths to those brave enough to wear it.",
		Price:       13,
	},
	{
		ID:          "black-candle",
		Name:        "Black Candle",
		Description: "A candle that burns with shadows, perfect for summoning rituals.",
		Price:       7,
	},
	{
		ID:          "ancient-grimoire",
		Name:        "Ancient Grimoire",
		Description: "A tome containing forbidden knowledge from ages past.",
		Price:       25,
	},
	{
		ID:          "blood-amulet",
		Name:        "Blood Amulet",
		Description: "A crimson amulet that pulses with otherworldly energy.",
		Price:       18,
	},
}

// Items returns the full catalog.
func Items() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks up a catalog item by id.
func Find(id string) (Item, bool) {
	for _, it := range catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
