package controller

import "fmt"

// User-facing result messages
const (
	MsgSelectBoth    = "Please select both an animal and a sound."
	MsgLoading       = "Loading..."
	MsgNoInformation = "No information found for this combination."
	MsgRequestFailed = "Sorry, there was an error processing your request. Please try again."
)

// Icons used by the success template
const (
	IconSearch  = "🔍"
	IconSpeaker = "📢"
)

// FormatCallFor renders the success message for a pair. The two selected
// values are emphasised with Markdown bold.
func FormatCallFor(animal, sound, callFor string) string {
	return fmt.Sprintf("%s **%s** make a **\"%s\"** sound for:\n\n%s %s",
		IconSearch, animal, sound, IconSpeaker, callFor)
}
