package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL = "server_url"
	KeyAnimals   = "fallback_animals"
)

// Default values
const (
	DefaultServerURL = "http://127.0.0.1:5000"
	AnimalSeparator  = ","
)

// DefaultAnimals is offered when the server page cannot be read and nothing is configured
var DefaultAnimals = []string{"Cat", "Cow", "Dog", "Duck"}

// Settings manages application configuration
type Settings struct {
	app fyne.App
	env *Env
}

// NewSettings creates a new settings manager. env may be nil.
func NewSettings(app fyne.App, env *Env) *Settings {
	return &Settings{app: app, env: env}
}

// GetServerURL returns the configured backend base URL
func (s *Settings) GetServerURL() string {
	serverURL := s.app.Preferences().String(KeyServerURL)
	if serverURL != "" {
		return serverURL
	}
	if s.env != nil && s.env.ServerURL != "" {
		return s.env.ServerURL
	}
	return DefaultServerURL
}

// SetServerURL stores the backend base URL after validating it
func (s *Settings) SetServerURL(serverURL string) error {
	serverURL = strings.TrimRight(strings.TrimSpace(serverURL), "/")
	if err := ValidateServerURL(serverURL); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyServerURL, serverURL)
	return nil
}

// GetFallbackAnimals returns the animal list used when the server page is unavailable
func (s *Settings) GetFallbackAnimals() []string {
	animals := ParseAnimals(s.app.Preferences().String(KeyAnimals))
	if len(animals) == 0 {
		return append([]string(nil), DefaultAnimals...)
	}
	return animals
}

// SetFallbackAnimals stores the fallback animal list
func (s *Settings) SetFallbackAnimals(animals []string) {
	s.app.Preferences().SetString(KeyAnimals, strings.Join(animals, AnimalSeparator))
}

// ParseAnimals splits a comma separated list, trimming blanks and dropping duplicates
func ParseAnimals(raw string) []string {
	var animals []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, AnimalSeparator) {
		animal := strings.TrimSpace(part)
		if animal == "" || seen[animal] {
			continue
		}
		seen[animal] = true
		animals = append(animals, animal)
	}
	return animals
}
