package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.@+-]+$`)

// NormalizeUsername trims and validates a login name. Usernames are case sensitive.
func NormalizeUsername(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("username is required")
	}
	if len(s) > 150 {
		return "", fmt.Errorf("username cannot exceed 150 characters")
	}
	if !usernameRegex.MatchString(s) {
		return "", fmt.Errorf("username may only contain letters, digits and @.+-_")
	}
	return s, nil
}
