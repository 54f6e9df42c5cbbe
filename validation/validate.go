// Package validation implements the identifier syntax rules for tool names,
// prompt names, and resource URIs. The checks are pure and deterministic and
// run at both registration time and dispatch time.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength = 128
	maxURILength  = 2048
)

// ValidateToolName checks a tool name against the protocol naming rules. A
// valid name is 1 to 128 characters of ASCII letters, digits, underscore,
// hyphen, and dot. Names are case-sensitive.
func ValidateToolName(name string) error {
	if name == "" {
		return errors.New("Tool name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("Tool name '%s' exceeds maximum length of %d characters", name, maxNameLength)
	}
	for _, r := range name {
		if !isNameRune(r) {
			return fmt.Errorf("Tool name '%s' contains invalid character '%c'. Only A-Z, a-z, 0-9, _, -, and . are allowed", name, r)
		}
	}
	return nil
}

// ValidatePromptName checks a prompt name. Prompt names follow the same rules
// as tool names.
func ValidatePromptName(name string) error {
	if name == "" {
		return errors.New("Prompt name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("Prompt name '%s' exceeds maximum length of %d characters", name, maxNameLength)
	}
	for _, r := range name {
		if !isNameRune(r) {
			return fmt.Errorf("Prompt name '%s' contains invalid character '%c'. Only A-Z, a-z, 0-9, _, -, and . are allowed", name, r)
		}
	}
	return nil
}

// ValidateResourceURI checks a resource URI. A valid URI is 1 to 2048
// characters (counted by code point), has the form scheme://path, and its
// scheme contains only ASCII alphanumerics, '+', '-', or '.'.
func ValidateResourceURI(uri string) error {
	if uri == "" {
		return errors.New("Resource URI cannot be empty")
	}
	if utf8.RuneCountInString(uri) > maxURILength {
		return fmt.Errorf("Resource URI '%s' exceeds maximum length of %d characters", uri, maxURILength)
	}
	sep := strings.Index(uri, "://")
	if sep < 0 {
		return fmt.Errorf("Resource URI '%s' is not a valid URI (missing scheme, expected format: scheme://path)", uri)
	}
	scheme := uri[:sep]
	if scheme == "" {
		return fmt.Errorf("Resource URI '%s' has empty scheme (expected format: scheme://path)", uri)
	}
	for _, r := range scheme {
		if !isSchemeRune(r) {
			return fmt.Errorf("Resource URI '%s' has invalid scheme '%s' (scheme must contain only alphanumeric, +, -, or . characters)", uri, scheme)
		}
	}
	if uri[sep+3:] == "" {
		return fmt.Errorf("Resource URI '%s' has empty path (expected format: scheme://path)", uri)
	}
	return nil
}

func isNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' || r == '.'
}

func isSchemeRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'
}
