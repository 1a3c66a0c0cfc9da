package greeting

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultGreeting is shown when no name is involved.
const DefaultGreeting = "Hello from JavaScript! 👋"

// ErrNameRequired is returned when the name is blank.
var ErrNameRequired = errors.New("Please enter your name first!")

// Greet builds the personal greeting for name.
func Greet(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return fmt.Sprintf("Hello, %s! Welcome to JavaScript! 🎉", name), nil
}
