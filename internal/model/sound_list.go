package model

// SoundListStatus represents the current status of the sound dropdown
type SoundListStatus string

const (
	// SoundListIdle means no animal is selected
	SoundListIdle SoundListStatus = "idle"

	// SoundListLoading means sounds are being fetched for the selected animal
	SoundListLoading SoundListStatus = "loading"

	// SoundListLoaded means a non-empty sound list is available
	SoundListLoaded SoundListStatus = "loaded"

	// SoundListEmpty means the lookup returned no sounds
	SoundListEmpty SoundListStatus = "empty"

	// SoundListError means the lookup failed
	SoundListError SoundListStatus = "error"
)

// Placeholder texts shown as the only (or leading) option of the sound dropdown
const (
	PlaceholderSelectAnimal = "Select an animal first"
	PlaceholderLoading      = "Loading sounds..."
	PlaceholderSelectSound  = "-- Select a Sound --"
	PlaceholderNoSounds     = "No sounds available"
	PlaceholderLoadError    = "Error loading sounds"
)

// String returns the string representation of SoundListStatus
func (s SoundListStatus) String() string {
	return string(s)
}

// Option is a single dropdown entry. An empty Value marks a placeholder.
type Option struct {
	Value string
	Label string
}

// IsPlaceholder reports whether the option carries no selectable value
func (o Option) IsPlaceholder() bool {
	return o.Value == ""
}

// SoundListState is the content of the sound dropdown for one animal
type SoundListState struct {
	Status SoundListStatus
	Animal string
	Sounds []string
}

// IdleSoundList returns the state used when no animal is selected
func IdleSoundList() SoundListState {
	return SoundListState{Status: SoundListIdle}
}

// LoadingSoundList returns the state shown while sounds for animal are fetched
func LoadingSoundList(animal string) SoundListState {
	return SoundListState{Status: SoundListLoading, Animal: animal}
}

// ErrorSoundList returns the state shown when the sound lookup failed
func ErrorSoundList(animal string) SoundListState {
	return SoundListState{Status: SoundListError, Animal: animal}
}

// LoadedSoundList returns the state for a completed lookup. An empty list
// yields SoundListEmpty. The slice is copied so later mutation by the caller
// does not leak into rendered state.
func LoadedSoundList(animal string, sounds []string) SoundListState {
	if len(sounds) == 0 {
		return SoundListState{Status: SoundListEmpty, Animal: animal}
	}
	copied := make([]string, len(sounds))
	copy(copied, sounds)
	return SoundListState{Status: SoundListLoaded, Animal: animal, Sounds: copied}
}

// Enabled returns true if the user may pick a sound
func (s SoundListState) Enabled() bool {
	return s.Status == SoundListLoaded && len(s.Sounds) > 0
}

// Placeholder returns the text of the placeholder option for the current status
func (s SoundListState) Placeholder() string {
	switch s.Status {
	case SoundListLoading:
		return PlaceholderLoading
	case SoundListLoaded:
		return PlaceholderSelectSound
	case SoundListEmpty:
		return PlaceholderNoSounds
	case SoundListError:
		return PlaceholderLoadError
	default:
		return PlaceholderSelectAnimal
	}
}

// Options returns the dropdown entries: a leading placeholder followed by one
// option per sound in response order, or the placeholder alone when disabled.
func (s SoundListState) Options() []Option {
	options := make([]Option, 0, len(s.Sounds)+1)
	options = append(options, Option{Label: s.Placeholder()})
	if !s.Enabled() {
		return options
	}
	for _, sound := range s.Sounds {
		options = append(options, Option{Value: sound, Label: sound})
	}
	return options
}

// Contains reports whether sound is a member of the loaded list
func (s SoundListState) Contains(sound string) bool {
	if !s.Enabled() || sound == "" {
		return false
	}
	for _, candidate := range s.Sounds {
		if candidate == sound {
			return true
		}
	}
	return false
}
