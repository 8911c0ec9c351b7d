package models

// Product is a single catalog entry. JSON field names follow the persisted
// collection format, so records written by earlier runs keep loading.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Img      string  `json:"img"`
	Hot      bool    `json:"hot"`
	New      bool    `json:"isNew,omitempty"`
}
