package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readLine reads one line without its line terminator. A final line that
// ends at EOF is returned as is; EOF with nothing read is an error.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readBlock collects lines until a blank one or EOF.
func readBlock(reader *bufio.Reader) []string {
	lines := make([]string, 0)
	for {
		line, err := readLine(reader)
		if err != nil || line == "" {
			return lines
		}
		lines = append(lines, line)
	}
}

// GetSimpleText prints prompt to w and returns the next line of input with
// surrounding whitespace removed.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echo. The caller
// wipes the returned slice.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

// GetMultiline reads free text up to the first blank line and joins it
// with '\n'. Used for the CV summary and recommendation notes.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(readBlock(reader), "\n")), nil
}

// GetLines prompts for one item per line, ending on an empty line. Lines
// are returned untrimmed.
func GetLines(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprint(w, prompt+" (empty line to finish)\n"); err != nil {
		return nil, err
	}
	return readBlock(reader), nil
}
