package ui

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/animal-sounds/internal/config"
	"github.com/ytget/animal-sounds/internal/controller"
	"github.com/ytget/animal-sounds/internal/lookup"
	"github.com/ytget/animal-sounds/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	lookup     lookup.Lookup
	logger     *slog.Logger
	controller *controller.Controller

	animalSelect   *widget.Select
	clearAnimalBtn *widget.Button
	soundSelect    *widget.Select
	submitBtn      *widget.Button
	statusLabel    *widget.Label

	// Result region
	resultText       *widget.RichText
	resultBackground *canvas.Rectangle
	resultContainer  *fyne.Container
	resultStyle      string
}

// NewRootUI creates and initializes the main UI. Continuations of lookups are
// scheduled with fyne.Do unless opts override the dispatcher.
func NewRootUI(window fyne.Window, settings *config.Settings, l lookup.Lookup, logger *slog.Logger, opts ...controller.Option) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: settings,
		lookup:   l,
		logger:   logger,
	}

	window.SetTitle(TextAppTitle)

	ui.setupUI()

	ctrlOpts := append([]controller.Option{
		controller.WithLogger(logger),
		controller.WithDispatcher(fyne.Do),
	}, opts...)
	ui.controller = controller.New(l, ui, ctrlOpts...)

	// Wire handlers only once the controller exists
	ui.animalSelect.OnChanged = ui.onAnimalChanged
	ui.setAnimals(settings.GetFallbackAnimals())

	logger.Debug("UI setup completed", "server", settings.GetServerURL())
	return ui
}

// Controller returns the selection controller driving this window
func (ui *RootUI) Controller() *controller.Controller {
	return ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.animalSelect = widget.NewSelect(nil, nil)
	ui.animalSelect.PlaceHolder = TextAnimalPlaceholder

	ui.clearAnimalBtn = widget.NewButton(IconClear, ui.onClearAnimal)
	ui.clearAnimalBtn.Importance = widget.LowImportance

	ui.soundSelect = widget.NewSelect(nil, nil)

	ui.submitBtn = widget.NewButton(TextSubmit, ui.onSubmit)
	ui.submitBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.TextStyle = fyne.TextStyle{Italic: true}

	form := widget.NewForm(
		widget.NewFormItem(TextAnimal, container.NewBorder(nil, nil, nil, ui.clearAnimalBtn, ui.animalSelect)),
		widget.NewFormItem(TextSound, ui.soundSelect),
	)

	// Result region (hidden by default)
	ui.resultText = widget.NewRichTextFromMarkdown("")
	ui.resultText.Wrapping = fyne.TextWrapWord
	ui.resultBackground = canvas.NewRectangle(ResultDefaultColor)
	ui.resultBackground.CornerRadius = 4
	ui.resultBackground.SetMinSize(fyne.NewSize(0, ResultMinHeight))
	ui.resultContainer = container.NewStack(ui.resultBackground, container.NewPadded(ui.resultText))
	ui.resultContainer.Hide()

	header := container.NewBorder(nil, nil, nil, settingsBtn,
		widget.NewLabelWithStyle(TextAppTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	top := container.NewVBox(header, widget.NewSeparator(), form, ui.submitBtn)

	content := container.NewBorder(
		top,                // top
		ui.statusLabel,     // bottom
		nil,                // left
		nil,                // right
		ui.resultContainer, // center
	)

	ui.window.SetContent(container.NewPadded(content))
}

// RenderSoundList applies a sound list state to the sound dropdown
func (ui *RootUI) RenderSoundList(state model.SoundListState) {
	var labels []string
	for _, option := range state.Options() {
		if !option.IsPlaceholder() {
			labels = append(labels, option.Label)
		}
	}

	ui.soundSelect.PlaceHolder = state.Placeholder()
	ui.soundSelect.SetOptions(labels)
	ui.soundSelect.ClearSelected()

	if state.Enabled() {
		ui.soundSelect.Enable()
	} else {
		ui.soundSelect.Disable()
	}
}

// RenderResult applies a result state to the result region
func (ui *RootUI) RenderResult(state model.ResultState) {
	if !state.Visible() {
		ui.resultContainer.Hide()
		return
	}

	ui.resultStyle = state.StyleClass()
	ui.resultText.ParseMarkdown(state.Message)
	ui.resultBackground.FillColor = ResultColor(ui.resultStyle)
	ui.resultBackground.Refresh()
	ui.resultContainer.Show()
}

// onAnimalChanged handles a new animal selection
func (ui *RootUI) onAnimalChanged(animal string) {
	ui.controller.OnAnimalChange(animal)
}

// onClearAnimal returns the animal dropdown to the empty selection
func (ui *RootUI) onClearAnimal() {
	ui.animalSelect.OnChanged = nil
	ui.animalSelect.ClearSelected()
	ui.animalSelect.OnChanged = ui.onAnimalChanged

	ui.onAnimalChanged("")
}

// onSubmit handles the submit button click
func (ui *RootUI) onSubmit() {
	ui.controller.OnSubmit(ui.animalSelect.Selected, ui.soundSelect.Selected)
}

// setAnimals replaces the animal options, keeping the selection when still offered
func (ui *RootUI) setAnimals(animals []string) {
	selected := ui.animalSelect.Selected
	ui.animalSelect.SetOptions(animals)

	for _, animal := range animals {
		if animal == selected {
			return
		}
	}
	if selected != "" {
		ui.onClearAnimal()
	}
}

// RefreshAnimals loads the animal catalog from the server. On failure the
// configured fallback list stays in place.
func (ui *RootUI) RefreshAnimals(ctx context.Context) {
	animals, err := ui.lookup.ListAnimals(ctx)
	if err != nil {
		ui.logger.Warn("load animals failed, using fallback list", "error", err)
		return
	}
	if len(animals) == 0 {
		ui.logger.Warn("server offered no animals, using fallback list")
		return
	}

	ui.logger.Info("animals loaded", "count", len(animals))
	fyne.Do(func() {
		ui.setAnimals(animals)
	})
}

// CheckHealth reports the backend health in the status line
func (ui *RootUI) CheckHealth(ctx context.Context) {
	fyne.Do(func() {
		ui.statusLabel.SetText(TextChecking)
	})

	health, err := ui.lookup.Health(ctx)

	var text string
	switch {
	case err != nil:
		ui.logger.Warn("health check failed", "error", err)
		text = IconDown + " " + fmt.Sprintf(TextServerDown, ui.settings.GetServerURL())
	case !health.IsHealthy():
		text = IconDown + " " + TextServerNoData
	default:
		text = IconHealthy + " " + fmt.Sprintf(TextServerHealthy, health.TotalRecords)
	}

	fyne.Do(func() {
		ui.statusLabel.SetText(text)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		if ui.animalSelect.Selected == "" {
			ui.setAnimals(ui.settings.GetFallbackAnimals())
		}
	})
}
