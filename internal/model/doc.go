package model

// Package model defines the transient, UI-local entities of the selection form:
// the sound list state, the result state, and the JSON payloads exchanged with
// the lookup endpoints. States are plain values so transitions can be tested
// without any widgets.
