package pos

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader prompts for and parses terminal input, re-prompting on malformed
// values. The rest of the program only ever sees well-formed primitives; an
// error from any Read method means the input stream ended.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (r *Reader) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

// ReadInt keeps prompting until the user enters a well-formed integer.
func (r *Reader) ReadInt(prompt string) (int, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(r.out, "Invalid number. Try again.")
			continue
		}
		return n, nil
	}
}

// ReadFloat keeps prompting until the user enters a well-formed decimal.
func (r *Reader) ReadFloat(prompt string) (float64, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return 0, err
		}
		f, convErr := strconv.ParseFloat(line, 64)
		if convErr != nil {
			fmt.Fprintln(r.out, "Invalid number. Try again.")
			continue
		}
		return f, nil
	}
}

// ReadString keeps prompting until the user enters non-empty text, returned
// trimmed.
func (r *Reader) ReadString(prompt string) (string, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(r.out, "Input cannot be empty. Try again.")
			continue
		}
		return line, nil
	}
}
