package ui

// Package ui contains the Fyne-based user interface for the application.
// It consumes the published recipe catalog and renders the list screen, the
// recipe detail screen, and the paged step viewer. All UI strings are
// localized via Localization. The package holds only UI-local state
// (selection, step cursor, filters); the catalog itself is owned by the
// catalog service.
