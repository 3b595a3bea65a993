package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// promptText reads one trimmed line of input.
func (a *App) promptText(prompt string) (string, error) {
	if _, err := fmt.Fprintf(a.out, "%s: ", prompt); err != nil {
		return "", err
	}
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPasswordConfirmed reads a hidden password twice and requires both
// entries to match.
func (a *App) promptPasswordConfirmed() (string, error) {
	fmt.Fprint(a.out, "Password: ")
	first, err := readPassword()
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}

	fmt.Fprint(a.out, "Repeat for confirmation: ")
	second, err := readPassword()
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", errors.New("the two entered values do not match")
	}
	if len(first) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(first), nil
}
