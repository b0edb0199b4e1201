package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Reader prompts the operator and reads one answer per line
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader creates a Reader over the console streams. Out should already
// be wrapped with NewWriter when prompts may hold non-ASCII text.
func NewReader(in io.Reader, out io.Writer, enc Encoding) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(NewDecoder(in, enc)),
		out:     out,
	}
}

// Line prints prompt and returns the answer without its line terminator
func (r *Reader) Line(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}

// Text asks for free text. When def is not empty it is shown and an empty
// answer keeps it.
func (r *Reader) Text(prompt, def string) (string, error) {
	answer, err := r.Line(withDefault(prompt, def))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" && def != "" {
		return def, nil
	}
	return answer, nil
}

// ClearToken answers an OptionalText prompt to empty the current value
const ClearToken = "-"

// OptionalText is Text for fields that may be empty. Answering ClearToken
// returns the empty string even when def is set.
func (r *Reader) OptionalText(prompt, def string) (string, error) {
	if def != "" {
		prompt = withDefault(prompt, def+", "+ClearToken+" to clear")
	}
	answer, err := r.Line(prompt)
	if err != nil {
		return "", err
	}
	switch strings.TrimSpace(answer) {
	case ClearToken:
		return "", nil
	case "":
		return def, nil
	}
	return answer, nil
}

// Int asks for an integer until one is given
func (r *Reader) Int(prompt string) (int, error) {
	return r.integer(prompt, nil)
}

// IntOr asks for an integer; an empty answer returns def
func (r *Reader) IntOr(prompt string, def int) (int, error) {
	return r.integer(prompt, &def)
}

func (r *Reader) integer(prompt string, def *int) (int, error) {
	if def != nil {
		prompt = withDefault(prompt, strconv.Itoa(*def))
	}
	for {
		answer, err := r.Line(prompt)
		if err != nil {
			return 0, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" && def != nil {
			return *def, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(r.out, "Please enter a whole number.")
	}
}

// Decimal asks for a decimal amount until one is given. Both "10.5" and
// "10,5" are accepted.
func (r *Reader) Decimal(prompt string) (decimal.Decimal, error) {
	return r.amount(prompt, nil)
}

// DecimalOr asks for a decimal amount; an empty answer returns def
func (r *Reader) DecimalOr(prompt string, def decimal.Decimal) (decimal.Decimal, error) {
	return r.amount(prompt, &def)
}

func (r *Reader) amount(prompt string, def *decimal.Decimal) (decimal.Decimal, error) {
	if def != nil {
		prompt = withDefault(prompt, def.StringFixed(2))
	}
	for {
		answer, err := r.Line(prompt)
		if err != nil {
			return decimal.Decimal{}, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" && def != nil {
			return *def, nil
		}
		d, err := decimal.NewFromString(strings.Replace(answer, ",", ".", 1))
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(r.out, "Please enter an amount such as 199.90.")
	}
}

// Choice lists options numbered from 1 and returns the zero-based index of
// the one picked. A def of -1 means there is no default.
func (r *Reader) Choice(prompt string, options []string, def int) (int, error) {
	for i, opt := range options {
		fmt.Fprintf(r.out, "  %d - %s\n", i+1, opt)
	}
	for {
		var (
			n   int
			err error
		)
		if def >= 0 && def < len(options) {
			n, err = r.IntOr(prompt, def+1)
		} else {
			n, err = r.Int(prompt)
		}
		if err != nil {
			return 0, err
		}
		if n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(r.out, "Please pick a number between 1 and %d.\n", len(options))
	}
}

func withDefault(prompt, def string) string {
	if def == "" {
		return prompt
	}
	trimmed := strings.TrimRight(prompt, " :")
	return fmt.Sprintf("%s [%s]: ", trimmed, def)
}
