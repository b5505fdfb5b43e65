package model

// Package model defines domain data structures used across the app: recipes,
// their ingredients and steps, the catalog load-state enum, and the step
// cursor. Structures are designed for direct binding in the UI and decode
// 1:1 from the bundled catalog document.
