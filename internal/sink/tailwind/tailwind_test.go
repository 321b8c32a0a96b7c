package tailwind

import (
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/token"
)

func testSet() token.Set {
	var set token.Set
	for _, name := range []string{"primary", "accent"} {
		f := token.Family{Name: name}
		for i := range f.Steps {
			f.Steps[i] = "#445566"
		}
		set.Add(f)
	}
	return set
}

func TestSinkName(t *testing.T) {
	s := New()
	if s.Name() != "tailwind" {
		t.Errorf("Name() = %s, want tailwind", s.Name())
	}
	if s.Description() == "" {
		t.Error("Description() should not be empty")
	}
}

func TestSinkValidate(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "valid css format", format: "css", wantErr: false},
		{name: "valid config format", format: "config", wantErr: false},
		{name: "invalid format", format: "invalid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWithFormat(tt.format)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSinkRenderCSS(t *testing.T) {
	s := New() // Default is CSS format
	files, err := s.Render(testSet())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	content, ok := files["tonal.tailwind.css"]
	if !ok {
		t.Fatalf("Render() missing tonal.tailwind.css, got files %v", files)
	}
	output := string(content)

	requiredStrings := []string{
		"@theme {",
		"--color-primary-50: #445566;",
		"--color-primary-950: #445566;",
		"--color-accent-500: #445566;",
	}
	for _, req := range requiredStrings {
		if !strings.Contains(output, req) {
			t.Errorf("Generated CSS missing required string: %s", req)
		}
	}
}

func TestSinkRenderConfig(t *testing.T) {
	s := NewWithFormat("config")
	files, err := s.Render(testSet())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	content, ok := files["tailwind.config.js"]
	if !ok {
		t.Fatalf("Render() missing tailwind.config.js, got files %v", files)
	}
	output := string(content)

	requiredStrings := []string{
		"module.exports",
		"theme:",
		"extend:",
		"colors:",
		`"primary": {`,
		`"50": "#445566",`,
		`"accent": {`,
	}
	for _, req := range requiredStrings {
		if !strings.Contains(output, req) {
			t.Errorf("Generated config missing required string: %s", req)
		}
	}

	// Families keep submission order in the rendered config.
	if ip, ia := strings.Index(output, `"primary"`), strings.Index(output, `"accent"`); ip > ia {
		t.Errorf("families reordered: primary at %d, accent at %d", ip, ia)
	}
}
