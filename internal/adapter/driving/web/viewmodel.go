package web

import (
	"net/url"
	"strings"

	vm "github.com/ericfisherdev/potcatalog/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/potcatalog/internal/application"
)

// removePath is the confirmation URL for a pot. Ids are escaped because the
// id scheme is opaque to this adapter.
func removePath(id string) string {
	return "/pots/" + url.PathEscape(id) + "/remove"
}

// toListViewModel converts the presenter output to its view model.
func toListViewModel(view application.ListView) vm.ListViewModel {
	rows := make([]vm.PotRowViewModel, 0, len(view.Rows))
	for _, r := range view.Rows {
		rows = append(rows, vm.PotRowViewModel{
			ID:         r.ID,
			Name:       r.Name,
			Location:   r.Location,
			Flowers:    r.Flowers,
			HasFlowers: r.HasFlowers,
			RemovePath: removePath(r.ID),
		})
	}

	return vm.ListViewModel{
		Rows:        rows,
		Empty:       view.Empty,
		Placeholder: view.Placeholder,
	}
}

// toFormViewModel converts buffered form input to its view model. The first
// blank required field receives focus after a failed submission.
func toFormViewModel(values application.FormValues, prompt string) vm.FormViewModel {
	form := vm.FormViewModel{
		Name:       values.Name,
		Location:   values.Location,
		Flowers:    values.Flowers,
		Prompt:     prompt,
		ActionPath: "/pots",
	}
	if prompt != "" {
		switch {
		case isBlank(values.Name):
			form.FocusField = string(application.FieldName)
		case isBlank(values.Location):
			form.FocusField = string(application.FieldLocation)
		}
	}
	return form
}

// toConfirmDialogViewModel converts a pending removal prompt to its view model.
func toConfirmDialogViewModel(prompt *application.RemovalPrompt) *vm.ConfirmDialogViewModel {
	return &vm.ConfirmDialogViewModel{
		PotID:        prompt.PotID(),
		Title:        prompt.Title(),
		Message:      prompt.Message(),
		CancelLabel:  application.RemovalCancelLabel,
		ConfirmLabel: application.RemovalConfirmLabel,
		ActionPath:   removePath(prompt.PotID()),
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
