package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericfisherdev/potcatalog/internal/domain/model"
)

// Field names one of the three form input buffers.
type Field string

const (
	FieldName     Field = "name"
	FieldLocation Field = "location"
	FieldFlowers  Field = "flowers"
)

// MissingFieldsPrompt is shown when a submission fails validation.
const MissingFieldsPrompt = "please fill in name and location"

// ErrUnknownField is returned by UpdateField for a field it does not buffer.
var ErrUnknownField = errors.New("unknown form field")

// FormValues is a copy of the buffered form input.
type FormValues struct {
	Name     string
	Location string
	Flowers  string
}

// FormController buffers the pot form input and submits it to the catalog.
// Buffers are only cleared by a successful Submit. A FormController is owned
// by a single UI surface and is not safe for concurrent use.
type FormController struct {
	catalog     *CatalogService
	onSubmitted func(model.PotRecord)

	values FormValues
	prompt string
}

// NewFormController creates a controller with empty buffers. onSubmitted, if
// non-nil, runs after every successful submission; UIs use it to dismiss
// input focus.
func NewFormController(catalog *CatalogService, onSubmitted func(model.PotRecord)) *FormController {
	return &FormController{
		catalog:     catalog,
		onSubmitted: onSubmitted,
	}
}

// UpdateField replaces the buffered value of field. No validation happens here.
func (f *FormController) UpdateField(field Field, value string) error {
	switch field {
	case FieldName:
		f.values.Name = value
	case FieldLocation:
		f.values.Location = value
	case FieldFlowers:
		f.values.Flowers = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Values returns the current buffers.
func (f *FormController) Values() FormValues {
	return f.values
}

// Prompt returns the user-facing message from the last failed submission,
// or "" if there is none.
func (f *FormController) Prompt() string {
	return f.prompt
}

// Submit adds the buffered pot to the catalog. On a validation error the
// buffers are kept, Prompt is set and the error is returned.
func (f *FormController) Submit(ctx context.Context) (model.PotRecord, error) {
	pot, err := f.catalog.Add(ctx, f.values.Name, f.values.Location, f.values.Flowers)
	if err != nil {
		if model.IsValidationError(err) {
			f.prompt = MissingFieldsPrompt
		}
		return model.PotRecord{}, err
	}

	f.values = FormValues{}
	f.prompt = ""
	if f.onSubmitted != nil {
		f.onSubmitted(pot)
	}
	return pot, nil
}
