package model

// ResultKind represents which visual state the result region is in
type ResultKind string

const (
	ResultHidden  ResultKind = "hidden"
	ResultLoading ResultKind = "loading"
	ResultSuccess ResultKind = "success"
	ResultError   ResultKind = "error"
)

// Style classes applied to the result region. Success uses the default style.
const (
	StyleError   = "error"
	StyleLoading = "loading"
	StyleDefault = ""
)

// ParseResultKind maps a free-form kind to one of the visible kinds.
// Anything other than "error" or "loading" falls back to success.
func ParseResultKind(kind string) ResultKind {
	switch ResultKind(kind) {
	case ResultError:
		return ResultError
	case ResultLoading:
		return ResultLoading
	default:
		return ResultSuccess
	}
}

// ResultState is the content of the result region
type ResultState struct {
	Kind    ResultKind
	Message string // may contain Markdown emphasis produced by the controller
}

// HiddenResult returns the state of a result region with nothing to show
func HiddenResult() ResultState {
	return ResultState{Kind: ResultHidden}
}

// Visible returns true if the region should be shown
func (r ResultState) Visible() bool {
	return r.Kind != ResultHidden && r.Kind != ""
}

// StyleClass returns the style class for the region; exactly one of
// StyleError, StyleLoading or StyleDefault.
func (r ResultState) StyleClass() string {
	switch r.Kind {
	case ResultError:
		return StyleError
	case ResultLoading:
		return StyleLoading
	default:
		return StyleDefault
	}
}
