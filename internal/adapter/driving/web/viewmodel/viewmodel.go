// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from application and domain types.
package viewmodel

// PageViewModel holds everything the catalog page renders.
type PageViewModel struct {
	Title     string
	CSRFToken string
	Form      FormViewModel
	List      ListViewModel
	HelpHTML  string

	// Removal is non-nil while a removal confirmation is pending.
	Removal *ConfirmDialogViewModel
}

// FormViewModel holds the three input buffers and the validation prompt.
type FormViewModel struct {
	Name       string
	Location   string
	Flowers    string
	Prompt     string
	FocusField string // input to autofocus, "" for none
	ActionPath string
}

// ListViewModel is either Rows or, when Empty, the Placeholder message.
type ListViewModel struct {
	Rows        []PotRowViewModel
	Empty       bool
	Placeholder string
}

// PotRowViewModel holds presentation-ready data for one catalog row.
type PotRowViewModel struct {
	ID         string
	Name       string
	Location   string
	Flowers    string
	HasFlowers bool
	RemovePath string
}

// ConfirmDialogViewModel is the two-choice removal confirmation.
type ConfirmDialogViewModel struct {
	PotID        string
	Title        string
	Message      string
	CancelLabel  string
	ConfirmLabel string
	ActionPath   string
}
