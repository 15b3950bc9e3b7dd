package usecase

import (
	"github.com/darzi-app/darzi/internal/catalog"
	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
)

// validateDraft checks submission readiness: a measurement method must be
// chosen; the sample method needs an image; the manual method needs every
// required field of the selected category.
func validateDraft(cat *catalog.Catalog, d *model.OrderDraft) error {
	switch d.MeasurementMethod {
	case model.MeasurementBySample:
		if d.MeasurementImage == "" {
			return &domainErrors.ValidationError{MissingImage: true}
		}
	case model.MeasurementManual:
		var missing []string
		if d.Category != nil {
			for _, f := range cat.MeasurementFields(d.Category.ID) {
				if v, ok := d.Measurements[f.ID]; !ok || v <= 0 {
					missing = append(missing, f.ID)
				}
			}
		}
		if len(missing) > 0 {
			return &domainErrors.ValidationError{MissingFields: missing}
		}
	default:
		return &domainErrors.ValidationError{MissingMethod: true}
	}
	return nil
}
