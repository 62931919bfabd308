package errors

import (
	"testing"
)

func TestValidateClassName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid polydata", "vtkPolyData", false},
		{"valid actor", "vtkActor", false},
		{"valid with digits", "vtkMultiBlockDataSet2", false},
		{"valid plain", "Mapper", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"leading digit", "2vtkActor", true},
		{"path traversal", "vtk/../Actor", true},
		{"null byte", "vtk\x00Actor", true},
		{"control char", "vtk\x01Actor", true},
		{"newline", "vtk\nActor", true},
		{"space", "vtk Actor", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClassName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClassName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContentHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid float hash", "wkvYpYXpYtrkORqJPrAMZw_12f", false},
		{"valid idtype hash", "1B2M2Y8AsgTpgAmY7PhCfg_4L", false},
		{"valid with slash", "a+b/c_100B", false},

		{"empty", "", true},
		{"no size suffix", "wkvYpYXpYtrkORqJPrAMZw", true},
		{"missing type code", "wkvYpYXpYtrkORqJPrAMZw_12", true},
		{"path traversal", "../etc/passwd_1f", true},
		{"too long", string(make([]byte, 80)) + "_1f", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentHash(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContentHash(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "scene.json", false},
		{"valid nested", "out/scene.json", false},
		{"valid deep", "a/b/c/d.svg", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "out/../../etc/passwd", true},
		{"backslash", "out\\scene.json", true},
		{"null byte", "out\x00.json", true},
		{"too long", string(make([]byte, 501)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSnapshotKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "scene-7f3a2b", false},
		{"valid with colon", "session:scene:1", false},

		{"empty", "", true},
		{"with slash", "a/b", true},
		{"with backslash", "a\\b", true},
		{"control char", "a\x01b", true},
		{"too long", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshotKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSnapshotKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
