package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(btn.Size().Width, MobileButtonHeight))
	}

	return btn
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CreateOrientationAwareContainer creates a container that adapts to orientation changes
func (m *MobileUI) CreateOrientationAwareContainer(portraitLayout, landscapeLayout fyne.CanvasObject) *fyne.Container {
	if !m.IsMobileDevice() {
		// For desktop, always use portrait layout
		return container.NewVBox(portraitLayout)
	}

	// For mobile, choose layout based on current orientation
	if m.IsLandscape() {
		return container.NewVBox(landscapeLayout)
	}
	return container.NewVBox(portraitLayout)
}
