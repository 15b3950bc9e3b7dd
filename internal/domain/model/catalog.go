package model

// Category is a garment category a customer can order.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
}

// Design is a style variant within a category. Price is an increment on top
// of the category base price.
type Design struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// AddOn is optional decorative work applied to a garment.
type AddOn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// MeasurementField is a single measurement required for a category.
type MeasurementField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
