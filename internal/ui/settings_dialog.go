package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/recipekit/recipebox/internal/config"
)

// ShowSettingsDialog displays the settings dialog and invokes onSaved after
// the user confirms and the preferences are written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	// Catalog resource name
	resourceEntry := widget.NewEntry()
	resourceEntry.SetPlaceHolder(config.DefaultCatalogResource)
	resourceEntry.SetText(settings.GetCatalogResource())

	// Thumbnails
	showImagesCheck := widget.NewCheck("", nil)
	showImagesCheck.SetChecked(settings.GetShowImages())

	thumbnailEntry := widget.NewEntry()
	thumbnailEntry.SetPlaceHolder(strconv.Itoa(config.DefaultThumbnailHeight))
	thumbnailEntry.SetText(strconv.Itoa(settings.GetThumbnailHeight()))

	// Language selection
	languageOptions := []string{}
	for code := range settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	languageSelect := widget.NewSelect(languageOptions, nil)
	languageSelect.SetSelected(settings.GetLanguage())

	form := container.NewVBox(
		widget.NewLabel(localization.GetText(KeyCatalogResource)),
		resourceEntry,
		widget.NewLabel(localization.GetText(KeyShowImages)),
		showImagesCheck,
		widget.NewLabel(localization.GetText(KeyThumbnailHeight)),
		thumbnailEntry,
		widget.NewLabel(localization.GetText(KeyLanguage)),
		languageSelect,
	)

	dialog.ShowCustomConfirm(
		localization.GetText(KeySettings),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		form,
		func(save bool) {
			if !save {
				return
			}

			settings.SetCatalogResource(resourceEntry.Text)
			settings.SetShowImages(showImagesCheck.Checked)

			if height, err := strconv.Atoi(thumbnailEntry.Text); err == nil {
				settings.SetThumbnailHeight(height)
			}

			if languageSelect.Selected != "" {
				settings.SetLanguage(languageSelect.Selected)
			}

			if onSaved != nil {
				onSaved()
			}
		},
		window,
	)
}
