package model

import "testing"

func TestInterestLabel_KnownCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"data-engineering", "Data Engineering"},
		{"ai-ml", "AI & Machine Learning"},
		{"genai", "Generative AI"},
		{"bi", "Business Intelligence"},
		{"mlops", "MLOps"},
		{"cloud-migration", "Cloud Migration"},
		{"aws-poc", "AWS POC Program"},
		{"other", "Other"},
	}
	for _, tt := range tests {
		if got := InterestLabel(tt.code); got != tt.want {
			t.Errorf("InterestLabel(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

// TestInterestLabel_UnknownCode verifies the identity fallback for codes
// not present in the table.
func TestInterestLabel_UnknownCode(t *testing.T) {
	if got := InterestLabel("bogus"); got != "bogus" {
		t.Errorf("InterestLabel(bogus) = %q, want identity fallback", got)
	}
}

func TestInterestLabel_Empty(t *testing.T) {
	if got := InterestLabel(""); got != InterestLabelNone {
		t.Errorf("InterestLabel(\"\") = %q, want %q", got, InterestLabelNone)
	}
}
