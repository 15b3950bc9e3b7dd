package dto

// CategoryResponse describes an orderable garment category.
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
}

// DesignResponse describes a design variant within a category.
type DesignResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// AddOnResponse describes optional decorative work.
type AddOnResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// MeasurementFieldResponse describes one required measurement.
type MeasurementFieldResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
