package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/recipekit/recipebox/internal/logging"
	"github.com/recipekit/recipebox/internal/model"
	"go.uber.org/zap"
)

// RecipeRow represents a compact recipe row widget in the list screen
type RecipeRow struct {
	widget.BaseWidget

	recipe      *model.Recipe
	showImage   bool
	thumbHeight int

	// UI components
	titleLabel *widget.Label
	tagsLabel  *widget.Label
	thumbnail  *canvas.Image

	// Callbacks
	onOpen func(recipeID string)
}

// NewRecipeRow creates a new recipe row widget
func NewRecipeRow(recipe *model.Recipe, showImage bool, thumbHeight int) *RecipeRow {
	if recipe == nil {
		logging.L().Warn("NewRecipeRow called with nil recipe")
		recipe = &model.Recipe{ID: "unknown"}
	}

	rr := &RecipeRow{
		recipe:      recipe,
		showImage:   showImage,
		thumbHeight: thumbHeight,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromRecipe()
	return rr
}

// SetOnOpen sets the callback invoked when the row is tapped
func (rr *RecipeRow) SetOnOpen(onOpen func(recipeID string)) {
	rr.onOpen = onOpen
}

// UpdateRecipe updates the row with new recipe data
func (rr *RecipeRow) UpdateRecipe(recipe *model.Recipe) {
	if recipe == nil {
		logging.L().Warn("UpdateRecipe called with nil recipe", zap.String("id", rr.recipe.ID))
		return
	}

	rr.recipe = recipe
	rr.updateFromRecipe()
	rr.Refresh()
}

// Tapped opens the recipe detail view
func (rr *RecipeRow) Tapped(_ *fyne.PointEvent) {
	if rr.onOpen != nil {
		rr.onOpen(rr.recipe.ID)
	}
}

// createUI creates the UI components
func (rr *RecipeRow) createUI() {
	rr.titleLabel = widget.NewLabel("")
	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	rr.titleLabel.Alignment = fyne.TextAlignLeading

	rr.tagsLabel = widget.NewLabel("")
	rr.tagsLabel.Alignment = fyne.TextAlignLeading
	rr.tagsLabel.TextStyle = fyne.TextStyle{Italic: true}
	rr.tagsLabel.Truncation = fyne.TextTruncateEllipsis

	rr.thumbnail = &canvas.Image{FillMode: canvas.ImageFillContain}
	rr.thumbnail.SetMinSize(fyne.NewSize(ThumbnailSize, ThumbnailSize))
}

// updateFromRecipe updates UI components based on recipe data
func (rr *RecipeRow) updateFromRecipe() {
	rr.titleLabel.SetText(rr.recipe.DisplayTitle())

	tagLine := rr.recipe.TagLine()
	if tagLine == "" {
		tagLine = DashPlaceholder
	}
	rr.tagsLabel.SetText(IconTag + " " + tagLine)

	if rr.showImage && rr.recipe.Image != "" {
		if res, err := LoadRecipeThumbnail(rr.recipe.Image, rr.thumbHeight); err == nil {
			rr.thumbnail.Resource = res
			rr.thumbnail.Refresh()
		} else {
			logging.L().Debug("recipe image not found",
				zap.String("recipe_id", rr.recipe.ID),
				zap.String("image", rr.recipe.Image),
			)
		}
	}
}

// CreateRenderer creates the widget renderer
func (rr *RecipeRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(rr.titleLabel, rr.tagsLabel)

	var layout *fyne.Container
	if rr.showImage {
		layout = container.NewBorder(nil, nil, rr.thumbnail, nil, text)
	} else {
		layout = container.NewBorder(nil, nil, widget.NewLabel(IconRecipe), nil, text)
	}

	return widget.NewSimpleRenderer(layout)
}

// MinSize returns the minimum row size so lists stay readable on small screens
func (rr *RecipeRow) MinSize() fyne.Size {
	min := rr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
