package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GetSimpleText prints a prompt to w and reads one trimmed line. A last
// line without a newline is returned as is.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetChoice lists options with numbers and reads either a number or a
// name, which match resolves to its canonical form. An empty answer
// returns "" when allowEmpty is set.
func GetChoice(reader *bufio.Reader, prompt string, options []string, match func(string) (string, bool), allowEmpty bool, w io.Writer) (string, error) {
	var b strings.Builder
	b.WriteString(prompt)
	for i, o := range options {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, o)
	}

	answer, err := GetSimpleText(reader, b.String(), w)
	if err != nil {
		return "", err
	}
	if answer == "" {
		if allowEmpty {
			return "", nil
		}
		return "", errEmptyAnswer
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("choice %d is not listed", n)
		}
		return options[n-1], nil
	}

	v, ok := match(answer)
	if !ok {
		return "", fmt.Errorf("%q is not a valid choice", answer)
	}
	return v, nil
}

var errEmptyAnswer = errors.New("an answer is required")
