package controller

// Package controller implements the selection controller behind the form: the
// animal change handler that drives the sound lookup, the submit handler that
// drives the call-for lookup, and the shared result sink. It holds the sound
// list and result states explicitly and pushes every transition to a Renderer,
// so the logic runs without any widgets.
