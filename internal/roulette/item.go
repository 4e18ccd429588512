package roulette

// Item is one selectable row.
type Item struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// DefaultItems returns the built-in list of restaurants.
func DefaultItems() []Item {
	return []Item{
		{ID: 1, Name: "Pizzeria Bar 3"},
		{ID: 2, Name: "Tamaniya Ogikubo"},
		{ID: 3, Name: "Chicago Pizza"},
		{ID: 4, Name: "Farmhouse Kitchen"},
	}
}
