package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxEmployeeIDLength bounds employee identifiers.
const MaxEmployeeIDLength = 64

var employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// NormalizeEmployeeID trims an employee identifier and checks its format.
// Identifiers are case sensitive: "e1" and "E1" are different employees.
// Accepts letters, digits, '.', '_' and '-', starting with a letter or digit.
func NormalizeEmployeeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("employee id is required")
	}
	if len(id) > MaxEmployeeIDLength {
		return "", fmt.Errorf("employee id is too long (max %d characters)", MaxEmployeeIDLength)
	}
	if !employeeIDRegex.MatchString(id) {
		return "", fmt.Errorf("invalid employee id %q. Use letters, digits, '.', '_' or '-'", id)
	}
	return id, nil
}

// IsValidEmployeeID checks if a string is an acceptable employee id
func IsValidEmployeeID(id string) bool {
	_, err := NormalizeEmployeeID(id)
	return err == nil
}
