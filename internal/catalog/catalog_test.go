package catalog

import (
	"errors"
	"testing"

	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
)

func TestDefaultCategories(t *testing.T) {
	c := Default()

	categories := c.Categories()
	if len(categories) != 6 {
		t.Fatalf("got %d categories, want 6", len(categories))
	}

	prices := map[string]int64{
		"blouse":   500,
		"shirt":    600,
		"kurti":    800,
		"lehenga":  2000,
		"kidswear": 300,
		"saree":    450,
	}
	for _, cat := range categories {
		want, ok := prices[cat.ID]
		if !ok {
			t.Errorf("unexpected category %q", cat.ID)
			continue
		}
		if cat.BasePrice != want {
			t.Errorf("%s base price = %d, want %d", cat.ID, cat.BasePrice, want)
		}
	}
}

func TestCategoryByID(t *testing.T) {
	c := Default()

	cat, err := c.CategoryByID("lehenga")
	if err != nil {
		t.Fatalf("CategoryByID: %v", err)
	}
	if cat.Name != "Lehenga" || cat.BasePrice != 2000 {
		t.Errorf("category = %+v", cat)
	}

	if _, err := c.CategoryByID("tuxedo"); !errors.Is(err, domainErrors.ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestDesignsScopedToCategory(t *testing.T) {
	c := Default()

	for _, cat := range c.Categories() {
		if len(c.DesignsFor(cat.ID)) == 0 {
			t.Errorf("category %q has no designs", cat.ID)
		}
	}

	design, err := c.DesignByID("shirt", "casual")
	if err != nil {
		t.Fatalf("DesignByID: %v", err)
	}
	if design.Price != 50 {
		t.Errorf("casual shirt price = %d, want 50", design.Price)
	}

	// The design exists, but under another category.
	if _, err := c.DesignByID("blouse", "casual"); !errors.Is(err, domainErrors.ErrUnknownDesign) {
		t.Fatalf("err = %v, want ErrUnknownDesign", err)
	}
}

func TestAddOns(t *testing.T) {
	c := Default()

	if got := len(c.AddOns()); got != 6 {
		t.Fatalf("got %d add-ons, want 6", got)
	}

	addOn, err := c.AddOnByID("thread-work")
	if err != nil {
		t.Fatalf("AddOnByID: %v", err)
	}
	if addOn.Price != 180 {
		t.Errorf("thread work price = %d, want 180", addOn.Price)
	}

	if _, err := c.AddOnByID("gold-plating"); !errors.Is(err, domainErrors.ErrUnknownAddOn) {
		t.Fatalf("err = %v, want ErrUnknownAddOn", err)
	}
}

func TestTimeSlots(t *testing.T) {
	c := Default()

	slots := c.TimeSlots()
	if len(slots) != 5 {
		t.Fatalf("got %d slots, want 5", len(slots))
	}
	for _, s := range slots {
		if !c.ValidTimeSlot(s) {
			t.Errorf("listed slot %q not valid", s)
		}
	}
	if c.ValidTimeSlot("midnight") {
		t.Error("arbitrary slot accepted")
	}
}

func TestMeasurementFieldsPerCategory(t *testing.T) {
	c := Default()

	for _, cat := range c.Categories() {
		if len(c.MeasurementFields(cat.ID)) == 0 {
			t.Errorf("category %q has no measurement fields", cat.ID)
		}
	}

	fields := c.MeasurementFields("shirt")
	want := []string{"chest", "shoulder", "sleeve", "length", "collar"}
	if len(fields) != len(want) {
		t.Fatalf("shirt fields = %+v, want %v", fields, want)
	}
	for i, f := range fields {
		if f.ID != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.ID, want[i])
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	c.Categories()[0].BasePrice = 1
	if cat, _ := c.CategoryByID("blouse"); cat.BasePrice != 500 {
		t.Fatal("category mutation leaked into catalog")
	}

	c.AddOns()[0].Price = 1
	if a, _ := c.AddOnByID("computer-embroidery"); a.Price != 200 {
		t.Fatal("add-on mutation leaked into catalog")
	}
}
