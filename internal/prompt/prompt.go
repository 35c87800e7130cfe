package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter acquires validated numeric and selection input from a
// terminal-style stream, echoing prompts and retry notices to the paired
// writer. Format errors are always recovered locally by re-prompting; the
// only errors a Prompter returns come from the input source running dry.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New returns a Prompter reading from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// Float prompts until a positive number is entered.
func (p *Prompter) Float(label string) (float64, error) {
	return p.float(label+": ", nil)
}

// FloatDefault prompts with a default taken on empty input. An accepted
// default bypasses the positivity check.
func (p *Prompter) FloatDefault(label string, def float64) (float64, error) {
	prompt := fmt.Sprintf("%s [default %s]: ", label, strconv.FormatFloat(def, 'g', -1, 64))
	return p.float(prompt, &def)
}

func (p *Prompter) float(prompt string, def *float64) (float64, error) {
	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if raw == "" && def != nil {
			return *def, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(p.out, "  -> Not a number. Try again.")
			continue
		}
		if !(v > 0) { // NaN fails this check too
			fmt.Fprintln(p.out, "  -> Enter a positive number.")
			continue
		}
		return v, nil
	}
}

// WearExponent prompts like FloatDefault and additionally requires the value
// to lie strictly between 0 and 1.
func (p *Prompter) WearExponent(label string, def float64) (float64, error) {
	for {
		v, err := p.FloatDefault(label, def)
		if err != nil {
			return 0, err
		}
		if v > 0 && v < 1 {
			return v, nil
		}
		fmt.Fprintln(p.out, "  -> n must be between 0 and 1 (e.g., 0.1-0.4). Try again.")
	}
}

// Select prints a numbered menu once, then loops on the selection prompt
// until one of the listed numbers is entered, returning its index.
func (p *Prompter) Select(title string, options []string) (int, error) {
	fmt.Fprintf(p.out, "\n%s:\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt)
	}
	for {
		raw, err := p.readLine("Select [number]: ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(raw)
		if err != nil || choice < 1 || choice > len(options) {
			continue
		}
		return choice - 1, nil
	}
}

// Confirm asks a yes/no question that defaults to yes. Only an answer
// folding to "n" declines; anything else, including empty input, accepts.
func (p *Prompter) Confirm(label string) (bool, error) {
	raw, err := p.readLine(label)
	if err != nil {
		return false, err
	}
	return !strings.EqualFold(raw, "n"), nil
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
