package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/animal-sounds/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	serverURLEntry *widget.Entry
	animalsEntry   *widget.Entry
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	NewSettingsDialog(settings, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)
	sd.serverURLEntry.Validator = config.ValidateServerURL

	sd.animalsEntry = widget.NewEntry()
	sd.animalsEntry.SetPlaceHolder(strings.Join(config.DefaultAnimals, config.AnimalSeparator))

	form := container.NewVBox(
		widget.NewLabel(TextServerURL+":"),
		sd.serverURLEntry,

		widget.NewLabel(TextFallbackAnimals+":"),
		sd.animalsEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		TextSettings,
		TextSave,
		TextCancel,
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.animalsEntry.SetText(strings.Join(sd.settings.GetFallbackAnimals(), config.AnimalSeparator))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.save(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(TextSettings, TextSettingsSaved, sd.window)
}

// save validates and stores the entered values
func (sd *SettingsDialog) save() error {
	if serverURL := strings.TrimSpace(sd.serverURLEntry.Text); serverURL != "" {
		if err := sd.settings.SetServerURL(serverURL); err != nil {
			return err
		}
	}

	if animals := config.ParseAnimals(sd.animalsEntry.Text); len(animals) > 0 {
		sd.settings.SetFallbackAnimals(animals)
	}

	return nil
}
