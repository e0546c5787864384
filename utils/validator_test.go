package utils

import "testing"

func TestFileTypeFromName(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"laporan.pdf", "PDF"},
		{"data.xlsx", "XLSX"},
		{"mixed.DoCx", "DOCX"},
		{"archive.tar.gz", "GZ"},
		{"README", ""},
		{"trailing.", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FileTypeFromName(tt.fileName); got != tt.want {
			t.Errorf("FileTypeFromName(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, valid := range []string{"fed", "std1", "std11"} {
		if !IsValidCategory(valid) {
			t.Errorf("IsValidCategory(%q) = false", valid)
		}
	}
	for _, invalid := range []string{"", "std12", "STD1", "other"} {
		if IsValidCategory(invalid) {
			t.Errorf("IsValidCategory(%q) = true", invalid)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, valid := range []string{"pending", "reviewing", "approved"} {
		if !IsValidStatus(valid) {
			t.Errorf("IsValidStatus(%q) = false", valid)
		}
	}
	for _, invalid := range []string{"", "rejected", "Pending", "done"} {
		if IsValidStatus(invalid) {
			t.Errorf("IsValidStatus(%q) = true", invalid)
		}
	}
}
