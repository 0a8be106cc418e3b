package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It lays out the animal and sound dropdowns, the submit button and the result
// region, and renders the states pushed by the selection controller.
