package ui

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/recipekit/recipebox/internal/catalog"
	"github.com/recipekit/recipebox/internal/config"
	"github.com/recipekit/recipebox/internal/logging"
	"github.com/recipekit/recipebox/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	catalogSvc   catalog.Loader
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	// List screen widgets
	searchEntry *widget.Entry
	tagSelect   *widget.Select
	recipeList  *widget.List
	emptyLabel  *widget.Label
	listScreen  fyne.CanvasObject

	// Published catalog snapshot and the filtered view of it
	recipes []model.Recipe
	visible []model.Recipe

	// UI-local filter state
	currentQuery string
	currentTag   string

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, catalogSvc catalog.Loader) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		catalogSvc:   catalogSvc,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Catalog snapshots arrive from the load goroutine; handled on the UI thread
	ui.catalogSvc.SetUpdateCallback(ui.onCatalogUpdate)

	ui.setupUI()
	return ui
}

// Reload triggers a fresh catalog load using the configured resource name
func (ui *RootUI) Reload() {
	ui.catalogSvc.LoadAsync(ui.settings.GetCatalogResource())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Search entry
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchRecipes))
	ui.searchEntry.OnChanged = func(query string) {
		ui.currentQuery = query
		ui.updateVisibleRecipes()
		ui.recipeList.Refresh()
	}

	// Tag filter
	ui.tagSelect = widget.NewSelect([]string{ui.localization.GetText(KeyAllTags)}, func(tag string) {
		if tag == ui.localization.GetText(KeyAllTags) {
			ui.currentTag = ""
		} else {
			ui.currentTag = tag
		}
		ui.updateVisibleRecipes()
		ui.recipeList.Refresh()
	})
	ui.tagSelect.PlaceHolder = ui.localization.GetText(KeyAllTags)

	// Reload button
	reloadBtn := widget.NewButton(IconReload, ui.Reload)
	reloadBtn.Importance = widget.LowImportance

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, reloadBtn),
		ui.tagSelect,
		ui.searchEntry,
	)

	// Notification panel under the search row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Recipe list
	ui.recipeList = widget.NewList(
		func() int {
			return len(ui.visible)
		},
		func() fyne.CanvasObject {
			return NewRecipeRow(&model.Recipe{}, ui.settings.GetShowImages(), ui.settings.GetThumbnailHeight())
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			row, ok := obj.(*RecipeRow)
			if !ok || id >= len(ui.visible) {
				return
			}
			row.UpdateRecipe(&ui.visible[id])
		},
	)
	ui.recipeList.OnSelected = func(id widget.ListItemID) {
		ui.recipeList.UnselectAll()
		if id < len(ui.visible) {
			ui.showRecipeDetail(ui.visible[id])
		}
	}

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoRecipes))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter

	// Pulling the list down reloads the catalog on touch devices
	listWithRefresh := NewPullToRefreshWidget(
		container.NewStack(ui.emptyLabel, ui.recipeList),
		ui.Reload,
	)

	ui.listScreen = container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		listWithRefresh,
	)

	ui.window.SetContent(ui.listScreen)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.Reload)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onCatalogUpdate handles catalog snapshots delivered by the catalog service
func (ui *RootUI) onCatalogUpdate(snapshot catalog.Snapshot) {
	switch snapshot.State {
	case model.LoadStateLoading:
		ui.showNotification(ui.localization.GetText(KeyLoadingCatalog), true)
	case model.LoadStatePublished:
		fyne.Do(func() {
			ui.recipes = snapshot.Recipes
			ui.updateVisibleRecipes()
			ui.updateTagOptions()
			ui.recipeList.Refresh()
		})
		ui.hideNotification()
	case model.LoadStateFailed:
		// The published catalog is untouched; surface the failure so the
		// user is not left guessing at an empty list
		logging.L().Warn("catalog load failed", zap.Error(snapshot.Err))
		ui.showNotification(ui.localization.GetText(KeyLoadFailed), false)
	}
}

// updateVisibleRecipes applies search and tag filters over the published catalog
func (ui *RootUI) updateVisibleRecipes() {
	query := strings.ToLower(strings.TrimSpace(ui.currentQuery))

	visible := make([]model.Recipe, 0, len(ui.recipes))
	for _, recipe := range ui.recipes {
		if query != "" && !strings.Contains(strings.ToLower(recipe.DisplayTitle()), query) {
			continue
		}
		if ui.currentTag != "" && !hasTag(&recipe, ui.currentTag) {
			continue
		}
		visible = append(visible, recipe)
	}
	ui.visible = visible

	if len(ui.visible) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
}

// updateTagOptions rebuilds the tag filter options from the published catalog
func (ui *RootUI) updateTagOptions() {
	seen := make(map[string]bool)
	options := []string{ui.localization.GetText(KeyAllTags)}
	for _, recipe := range ui.recipes {
		for _, tag := range recipe.Tags {
			if !seen[tag] {
				seen[tag] = true
				options = append(options, tag)
			}
		}
	}
	ui.tagSelect.Options = options
	ui.tagSelect.Refresh()
}

func hasTag(recipe *model.Recipe, tag string) bool {
	for _, t := range recipe.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// showRecipeDetail switches the window content to the detail screen
func (ui *RootUI) showRecipeDetail(recipe model.Recipe) {
	ui.settings.SetLastRecipeID(recipe.ID)

	backBtn := widget.NewButton(IconBack+" "+ui.localization.GetText(KeyBack), ui.showList)
	backBtn.Importance = widget.LowImportance

	title := widget.NewLabel(recipe.DisplayTitle())
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Wrapping = fyne.TextWrapWord

	description := widget.NewLabel(recipe.Description)
	description.Wrapping = fyne.TextWrapWord

	tags := widget.NewLabel(IconTag + " " + recipe.TagLine())
	tags.TextStyle = fyne.TextStyle{Italic: true}
	if len(recipe.Tags) == 0 {
		tags.Hide()
	}

	// Ingredient list
	ingredientsHeader := widget.NewLabel(ui.localization.GetText(KeyIngredients))
	ingredientsHeader.TextStyle = fyne.TextStyle{Bold: true}
	ingredientItems := container.NewVBox()
	for i := range recipe.Ingredients {
		line := recipe.Ingredients[i].Display()
		if line == "" {
			line = DashPlaceholder
		}
		ingredientItems.Add(widget.NewLabel("• " + line))
	}

	cookBtn := ui.mobile.CreateMobileButton(ui.localization.GetText(KeyStartCooking), func() {
		ui.showSteps(recipe)
	})
	cookBtn.Importance = widget.HighImportance
	if len(recipe.Steps) == 0 {
		cookBtn.Disable()
	}

	body := container.NewVBox(title, tags, description, ingredientsHeader, ingredientItems)

	if ui.settings.GetShowImages() && recipe.Image != "" {
		if res, err := LoadRecipeImage(recipe.Image); err == nil {
			photo := canvas.NewImageFromResource(res)
			photo.FillMode = canvas.ImageFillContain
			photo.SetMinSize(fyne.NewSize(0, DetailImageHeight))
			body.Objects = append([]fyne.CanvasObject{photo}, body.Objects...)
		}
	}

	detail := container.NewBorder(
		backBtn, // top
		container.NewPadded(cookBtn), // bottom
		nil, nil,
		container.NewVScroll(body),
	)

	ui.window.SetContent(detail)
}

// showSteps switches the window content to the paged step viewer
func (ui *RootUI) showSteps(recipe model.Recipe) {
	backBtn := widget.NewButton(IconBack+" "+ui.localization.GetText(KeyBack), func() {
		ui.showRecipeDetail(recipe)
	})
	backBtn.Importance = widget.LowImportance

	stepsView := NewStepsView(&recipe, ui.localization, func() {
		ui.showRecipeDetail(recipe)
	})

	content := container.NewBorder(backBtn, nil, nil, nil, stepsView.Content())
	ui.window.SetContent(content)
}

// showList restores the list screen
func (ui *RootUI) showList() {
	ui.window.SetContent(ui.listScreen)
}

// showNotification displays a message in the notification panel under the
// search row. When spinning is true, a spinner indicates background activity
// and the panel stays up until the load settles; otherwise it auto-hides.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})

	if !spinning {
		go func() {
			time.Sleep(NotificationAutoHide)
			ui.hideNotification()
		}()
	}
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
		// Resource name or thumbnail settings may have changed
		ui.Reload()
	})
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchRecipes))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoRecipes))
	ui.recipeList.Refresh()
}
