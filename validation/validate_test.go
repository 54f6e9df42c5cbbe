package validation

import (
	"strings"
	"testing"
)

func TestValidateToolNameValid(t *testing.T) {
	valid := []string{
		"getUser",
		"DATA_EXPORT_v2",
		"admin.tools.list",
		"a",
		strings.Repeat("a", 128),
	}
	for _, name := range valid {
		if err := ValidateToolName(name); err != nil {
			t.Errorf("ValidateToolName(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateToolNameInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "Tool name cannot be empty"},
		{"space", "invalid name", "contains invalid character ' '"},
		{"comma", "invalid,name", "contains invalid character ','"},
		{"at sign", "invalid@name", "contains invalid character '@'"},
		{"too long", strings.Repeat("a", 129), "exceeds maximum length of 128 characters"},
		{"accented", "t\u00ebst", "contains invalid character '\u00eb'"},
		{"cjk", "\u6d4b\u8bd5", "contains invalid character"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateToolName(tc.in)
			if err == nil {
				t.Fatalf("ValidateToolName(%q) = nil, want error", tc.in)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("ValidateToolName(%q) = %q, want substring %q", tc.in, err, tc.want)
			}
		})
	}
}

func TestValidateToolNameDeterministic(t *testing.T) {
	inputs := []string{"", "ok_name", "bad name", strings.Repeat("x", 200)}
	for _, in := range inputs {
		first := ValidateToolName(in)
		second := ValidateToolName(in)
		if (first == nil) != (second == nil) {
			t.Fatalf("ValidateToolName(%q) not deterministic: %v vs %v", in, first, second)
		}
		if first != nil && first.Error() != second.Error() {
			t.Errorf("ValidateToolName(%q) message changed between runs", in)
		}
	}
}

func TestValidatePromptName(t *testing.T) {
	for _, name := range []string{"greeting", "summarize_text", "CODE_GEN_v1", "admin.prompts.list"} {
		if err := ValidatePromptName(name); err != nil {
			t.Errorf("ValidatePromptName(%q) = %v, want nil", name, err)
		}
	}
	cases := []struct {
		in   string
		want string
	}{
		{"", "Prompt name cannot be empty"},
		{"invalid name", "contains invalid character ' '"},
		{"invalid,name", "contains invalid character ','"},
		{strings.Repeat("a", 129), "exceeds maximum length of 128 characters"},
	}
	for _, tc := range cases {
		err := ValidatePromptName(tc.in)
		if err == nil {
			t.Fatalf("ValidatePromptName(%q) = nil, want error", tc.in)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("ValidatePromptName(%q) = %q, want substring %q", tc.in, err, tc.want)
		}
	}
}

func TestValidateResourceURIValid(t *testing.T) {
	valid := []string{
		"file:///path/to/file",
		"http://example.com/data",
		"https://api.example.com/resource",
		"test://resource",
		"custom+scheme://path",
	}
	for _, uri := range valid {
		if err := ValidateResourceURI(uri); err != nil {
			t.Errorf("ValidateResourceURI(%q) = %v, want nil", uri, err)
		}
	}
}

func TestValidateResourceURIInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "Resource URI cannot be empty"},
		{"no scheme", "invalid-uri", "missing scheme"},
		{"empty scheme", "://path", "has empty scheme"},
		{"bad scheme char", "invalid@scheme://path", "has invalid scheme 'invalid@scheme'"},
		{"empty path", "file://", "has empty path"},
		{"too long", strings.Repeat("a", 2049), "exceeds maximum length of 2048 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateResourceURI(tc.in)
			if err == nil {
				t.Fatalf("ValidateResourceURI(%q) = nil, want error", tc.in)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("ValidateResourceURI(%q) = %q, want substring %q", tc.in, err, tc.want)
			}
		})
	}
}

func TestValidateResourceURILengthCountsCodepoints(t *testing.T) {
	// 2048 multi-byte runes exceed 2048 bytes but stay within the limit.
	uri := "s://" + strings.Repeat("\u00e9", 2044)
	if err := ValidateResourceURI(uri); err != nil {
		t.Errorf("ValidateResourceURI with 2048 runes = %v, want nil", err)
	}
	if err := ValidateResourceURI(uri + "x"); err == nil {
		t.Errorf("ValidateResourceURI with 2049 runes = nil, want error")
	}
}
