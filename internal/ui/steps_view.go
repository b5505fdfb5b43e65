package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/recipekit/recipebox/internal/model"
)

// StepsView renders one recipe step at a time with forward-only navigation.
// The cursor starts at the first step and never wraps; once the last step is
// reached the action button finishes the session.
type StepsView struct {
	localization *Localization

	steps  []string
	cursor *model.StepCursor

	// UI components
	stepLabel    *widget.Label
	counterLabel *widget.Label
	nextBtn      *widget.Button
	content      fyne.CanvasObject

	// Callbacks
	onDone func()
}

// NewStepsView creates a step viewer over the recipe's ordered steps
func NewStepsView(recipe *model.Recipe, localization *Localization, onDone func()) *StepsView {
	sv := &StepsView{
		localization: localization,
		steps:        recipe.StepDescriptions(),
		onDone:       onDone,
	}
	sv.cursor = model.NewStepCursor(len(sv.steps))
	sv.createUI()
	sv.updateFromCursor()
	return sv
}

// Content returns the root canvas object of the step viewer
func (sv *StepsView) Content() fyne.CanvasObject {
	return sv.content
}

// createUI creates the UI components
func (sv *StepsView) createUI() {
	sv.stepLabel = widget.NewLabel("")
	sv.stepLabel.Wrapping = fyne.TextWrapWord
	sv.stepLabel.Alignment = fyne.TextAlignCenter
	sv.stepLabel.TextStyle = fyne.TextStyle{Bold: true}

	sv.counterLabel = widget.NewLabel("")
	sv.counterLabel.Alignment = fyne.TextAlignCenter

	sv.nextBtn = widget.NewButton(sv.localization.GetText(KeyNextStep), sv.onNextClick)
	sv.nextBtn.Importance = widget.HighImportance

	body := container.NewBorder(
		sv.counterLabel,                 // top
		container.NewPadded(sv.nextBtn), // bottom
		nil,                             // left
		nil,                             // right
		container.NewCenter(sv.stepLabel),
	)

	// Swiping left advances, same as the button; there is no backward swipe
	sv.content = NewSwipeableWidget(body, func(gesture GestureType) {
		if gesture == GestureSwipeLeft {
			sv.onNextClick()
		}
	})
}

// onNextClick advances the cursor or finishes when at the last step
func (sv *StepsView) onNextClick() {
	if sv.cursor.AtEnd() {
		if sv.onDone != nil {
			sv.onDone()
		}
		return
	}

	sv.cursor.Advance()
	sv.updateFromCursor()
}

// updateFromCursor updates labels and the action button from the cursor
func (sv *StepsView) updateFromCursor() {
	if len(sv.steps) == 0 {
		sv.stepLabel.SetText(DashPlaceholder)
		sv.counterLabel.SetText("")
		sv.nextBtn.SetText(sv.localization.GetText(KeyDone))
		return
	}

	sv.stepLabel.SetText(sv.steps[sv.cursor.Index()])
	sv.counterLabel.SetText(fmt.Sprintf(StepCounterFormat, sv.cursor.Index()+1, sv.cursor.Count()))

	if sv.cursor.AtEnd() {
		sv.nextBtn.SetText(sv.localization.GetText(KeyDone))
	} else {
		sv.nextBtn.SetText(sv.localization.GetText(KeyNextStep))
	}
}
