// internal/domain/catalog/entity.go
package catalog

// Item represents a purchasable menu item with per-size pricing.
// Prices are in paise (1/100 rupee) and never change at runtime.
type Item struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Prices map[string]int64 `json:"prices"`
}

// menu is the fixed catalog. Loaded once, read-only.
var menu = []Item{
	{ID: "item1", Name: "Besan Ladoo", Prices: map[string]int64{"250g": 15000, "500g": 30000, "1kg": 60000}},
	{ID: "item2", Name: "Rava Ladoo", Prices: map[string]int64{"250g": 13000, "500g": 26000, "1kg": 52000}},
	{ID: "item3", Name: "Motichur Ladoo", Prices: map[string]int64{"250g": 13000, "500g": 26000, "1kg": 52000}},
	{ID: "item4", Name: "Sweet Shankarpali", Prices: map[string]int64{"250g": 12000, "500g": 24000, "1kg": 48000}},
	{ID: "item5", Name: "Patal Pohe Chivda", Prices: map[string]int64{"250g": 11500, "500g": 23000, "1kg": 46000}},
	{ID: "item6", Name: "Bhajani Chakli", Prices: map[string]int64{"250g": 15000, "500g": 30000, "1kg": 60000}},
	{ID: "item7", Name: "Olya Naralachi Karanji", Prices: map[string]int64{"250g": 16000, "500g": 32000, "1kg": 64000}},
	{ID: "item8", Name: "Pakatle Chirote", Prices: map[string]int64{"250g": 13000, "500g": 26000, "1kg": 52000}},
	{ID: "item9", Name: "Namkeen Shankarpale", Prices: map[string]int64{"250g": 12000, "500g": 24000, "1kg": 48000}},
	{ID: "item10", Name: "Bhajke Pohe Chiwda", Prices: map[string]int64{"250g": 12000, "500g": 24000, "1kg": 48000}},
	{ID: "item11", Name: "Lasun/Tikhat Shev", Prices: map[string]int64{"250g": 11500, "500g": 22500, "1kg": 45000}},
	{ID: "item12", Name: "Kadboli", Prices: map[string]int64{"250g": 13000, "500g": 26000, "1kg": 52000}},
}
