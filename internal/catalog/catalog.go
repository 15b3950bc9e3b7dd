package catalog

import (
	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
)

// Catalog holds the static ordering configuration: garment categories,
// per-category designs, add-ons, pickup time slots and per-category required
// measurement fields.
type Catalog struct {
	categories []model.Category
	designs    map[string][]model.Design
	addOns     []model.AddOn
	timeSlots  []string
	fields     map[string][]model.MeasurementField
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		categories: []model.Category{
			{ID: "blouse", Name: "Blouse", BasePrice: 500},
			{ID: "shirt", Name: "Shirt", BasePrice: 600},
			{ID: "kurti", Name: "Kurti", BasePrice: 800},
			{ID: "lehenga", Name: "Lehenga", BasePrice: 2000},
			{ID: "kidswear", Name: "Kidswear", BasePrice: 300},
			{ID: "saree", Name: "Saree Blouse", BasePrice: 450},
		},
		designs: map[string][]model.Design{
			"blouse": {
				{ID: "boat-neck", Name: "Boat Neck", Price: 0},
				{ID: "puff-sleeve", Name: "Puff Sleeve", Price: 100},
				{ID: "backless", Name: "Backless", Price: 150},
				{ID: "high-neck", Name: "High Neck", Price: 80},
			},
			"shirt": {
				{ID: "formal", Name: "Formal Shirt", Price: 0},
				{ID: "casual", Name: "Casual Shirt", Price: 50},
				{ID: "party", Name: "Party Shirt", Price: 120},
			},
			"kurti": {
				{ID: "straight", Name: "Straight Cut", Price: 0},
				{ID: "anarkali", Name: "Anarkali", Price: 200},
				{ID: "a-line", Name: "A-Line", Price: 150},
			},
			"lehenga": {
				{ID: "traditional", Name: "Traditional", Price: 0},
				{ID: "indo-western", Name: "Indo-Western", Price: 500},
				{ID: "party-wear", Name: "Party Wear", Price: 800},
			},
			"kidswear": {
				{ID: "frock", Name: "Frock", Price: 0},
				{ID: "shirt-pant", Name: "Shirt & Pant", Price: 100},
				{ID: "ethnic", Name: "Ethnic Wear", Price: 150},
			},
			"saree": {
				{ID: "basic", Name: "Basic Blouse", Price: 0},
				{ID: "designer", Name: "Designer Blouse", Price: 200},
				{ID: "heavy-work", Name: "Heavy Work", Price: 300},
			},
		},
		addOns: []model.AddOn{
			{ID: "computer-embroidery", Name: "Computer Embroidery", Price: 200},
			{ID: "handloom-work", Name: "Handloom Work", Price: 300},
			{ID: "lacework", Name: "Lacework", Price: 150},
			{ID: "mirror-work", Name: "Mirror Work", Price: 250},
			{ID: "thread-work", Name: "Thread Work", Price: 180},
			{ID: "stone-work", Name: "Stone Work", Price: 400},
		},
		timeSlots: []string{
			"9:00 AM - 11:00 AM",
			"11:00 AM - 1:00 PM",
			"1:00 PM - 3:00 PM",
			"3:00 PM - 5:00 PM",
			"5:00 PM - 7:00 PM",
		},
		fields: map[string][]model.MeasurementField{
			"blouse": {
				{ID: "bust", Label: "Bust"},
				{ID: "shoulder", Label: "Shoulder"},
				{ID: "sleeve", Label: "Sleeve Length"},
				{ID: "waist", Label: "Waist"},
				{ID: "length", Label: "Blouse Length"},
			},
			"shirt": {
				{ID: "chest", Label: "Chest"},
				{ID: "shoulder", Label: "Shoulder"},
				{ID: "sleeve", Label: "Sleeve Length"},
				{ID: "length", Label: "Shirt Length"},
				{ID: "collar", Label: "Collar"},
			},
			"kurti": {
				{ID: "bust", Label: "Bust"},
				{ID: "waist", Label: "Waist"},
				{ID: "hip", Label: "Hip"},
				{ID: "length", Label: "Kurti Length"},
				{ID: "sleeve", Label: "Sleeve Length"},
			},
			"lehenga": {
				{ID: "bust", Label: "Bust"},
				{ID: "waist", Label: "Waist"},
				{ID: "hip", Label: "Hip"},
				{ID: "length", Label: "Lehenga Length"},
				{ID: "blouse_bust", Label: "Blouse Bust"},
			},
			"kidswear": {
				{ID: "chest", Label: "Chest"},
				{ID: "waist", Label: "Waist"},
				{ID: "length", Label: "Length"},
				{ID: "shoulder", Label: "Shoulder"},
			},
			"saree": {
				{ID: "bust", Label: "Bust"},
				{ID: "shoulder", Label: "Shoulder"},
				{ID: "sleeve", Label: "Sleeve Length"},
				{ID: "waist", Label: "Waist"},
				{ID: "length", Label: "Blouse Length"},
			},
		},
	}
}

// Categories returns all orderable categories.
func (c *Catalog) Categories() []model.Category {
	return append([]model.Category(nil), c.categories...)
}

// CategoryByID resolves a category or returns ErrUnknownCategory.
func (c *Catalog) CategoryByID(id string) (*model.Category, error) {
	for i := range c.categories {
		if c.categories[i].ID == id {
			cat := c.categories[i]
			return &cat, nil
		}
	}
	return nil, domainErrors.ErrUnknownCategory
}

// DesignsFor returns the designs available for a category.
func (c *Catalog) DesignsFor(categoryID string) []model.Design {
	return append([]model.Design(nil), c.designs[categoryID]...)
}

// DesignByID resolves a design within a category or returns ErrUnknownDesign.
func (c *Catalog) DesignByID(categoryID, id string) (*model.Design, error) {
	for _, d := range c.designs[categoryID] {
		if d.ID == id {
			design := d
			return &design, nil
		}
	}
	return nil, domainErrors.ErrUnknownDesign
}

// AddOns returns all orderable add-ons.
func (c *Catalog) AddOns() []model.AddOn {
	return append([]model.AddOn(nil), c.addOns...)
}

// AddOnByID resolves an add-on or returns ErrUnknownAddOn.
func (c *Catalog) AddOnByID(id string) (*model.AddOn, error) {
	for _, a := range c.addOns {
		if a.ID == id {
			addOn := a
			return &addOn, nil
		}
	}
	return nil, domainErrors.ErrUnknownAddOn
}

// TimeSlots returns the pickup time slots.
func (c *Catalog) TimeSlots() []string {
	return append([]string(nil), c.timeSlots...)
}

// ValidTimeSlot reports whether the slot is one of the fixed set.
func (c *Catalog) ValidTimeSlot(slot string) bool {
	for _, s := range c.timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// MeasurementFields returns the required measurement fields for a category.
func (c *Catalog) MeasurementFields(categoryID string) []model.MeasurementField {
	return append([]model.MeasurementField(nil), c.fields[categoryID]...)
}
