package model

import "testing"

func TestResultState_StyleClass(t *testing.T) {
	tests := []struct {
		kind     ResultKind
		expected string
	}{
		{ResultError, StyleError},
		{ResultLoading, StyleLoading},
		{ResultSuccess, StyleDefault},
		{ResultHidden, StyleDefault},
	}

	for _, test := range tests {
		result := ResultState{Kind: test.kind}.StyleClass()
		if result != test.expected {
			t.Errorf("ResultState(%s).StyleClass() = %q, expected %q", test.kind, result, test.expected)
		}
	}
}

func TestResultState_Visible(t *testing.T) {
	tests := []struct {
		state    ResultState
		expected bool
	}{
		{HiddenResult(), false},
		{ResultState{}, false},
		{ResultState{Kind: ResultLoading, Message: "Loading..."}, true},
		{ResultState{Kind: ResultSuccess, Message: "ok"}, true},
		{ResultState{Kind: ResultError, Message: "fail"}, true},
	}

	for _, test := range tests {
		result := test.state.Visible()
		if result != test.expected {
			t.Errorf("ResultState(%s).Visible() = %v, expected %v", test.state.Kind, result, test.expected)
		}
	}
}

func TestParseResultKind(t *testing.T) {
	tests := []struct {
		input    string
		expected ResultKind
	}{
		{"error", ResultError},
		{"loading", ResultLoading},
		{"success", ResultSuccess},
		{"", ResultSuccess},
		{"info", ResultSuccess},
	}

	for _, test := range tests {
		result := ParseResultKind(test.input)
		if result != test.expected {
			t.Errorf("ParseResultKind(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestHealthResponse_IsHealthy(t *testing.T) {
	if !(HealthResponse{Status: "healthy", DataLoaded: true}).IsHealthy() {
		t.Error("Expected healthy response with data to be healthy")
	}
	if (HealthResponse{Status: "healthy"}).IsHealthy() {
		t.Error("Expected response without data to be unhealthy")
	}
}
