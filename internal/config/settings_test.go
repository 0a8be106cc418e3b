package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	// Test default value
	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, got)
	}

	// Test setting custom value, trailing slash is dropped
	if err := settings.SetServerURL("https://sounds.example.com/"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := settings.GetServerURL(); got != "https://sounds.example.com" {
		t.Errorf("Expected server URL https://sounds.example.com, got %s", got)
	}

	// Invalid values are rejected and keep the previous one
	if err := settings.SetServerURL("ftp://sounds.example.com"); err == nil {
		t.Error("Expected error for non-http scheme")
	}
	if got := settings.GetServerURL(); got != "https://sounds.example.com" {
		t.Errorf("Expected server URL to stay unchanged, got %s", got)
	}
}

func TestServerURL_EnvFallback(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, &Env{ServerURL: "http://10.0.0.2:5000"})

	if got := settings.GetServerURL(); got != "http://10.0.0.2:5000" {
		t.Errorf("Expected env server URL, got %s", got)
	}
}

func TestFallbackAnimals(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	// Test default value
	animals := settings.GetFallbackAnimals()
	if len(animals) != len(DefaultAnimals) {
		t.Fatalf("Expected %d default animals, got %d", len(DefaultAnimals), len(animals))
	}

	settings.SetFallbackAnimals([]string{"Owl", "Wolf"})
	animals = settings.GetFallbackAnimals()
	if len(animals) != 2 || animals[0] != "Owl" || animals[1] != "Wolf" {
		t.Errorf("Expected [Owl Wolf], got %v", animals)
	}
}

func TestParseAnimals(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"Dog", []string{"Dog"}},
		{" Dog , Cat ,, Dog ", []string{"Dog", "Cat"}},
		{",,,", nil},
	}

	for _, test := range tests {
		result := ParseAnimals(test.input)
		if len(result) != len(test.expected) {
			t.Errorf("ParseAnimals(%q) = %v, expected %v", test.input, result, test.expected)
			continue
		}
		for i := range result {
			if result[i] != test.expected[i] {
				t.Errorf("ParseAnimals(%q)[%d] = %q, expected %q", test.input, i, result[i], test.expected[i])
			}
		}
	}
}
