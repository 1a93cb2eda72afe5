package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nof-sh/textkit/caesar"
)

// Input sources for text operations.
const (
	SourceKeyboard = 1
	SourceFile     = 2
)

// prompter handles line-based reading and writing for the menu.
type prompter struct {
	in  *bufio.Reader
	out io.Writer

	banner lipgloss.Style
	header lipgloss.Style
	alert  lipgloss.Style
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	r := lipgloss.NewRenderer(out)
	return &prompter{
		in:     bufio.NewReader(in),
		out:    out,
		banner: r.NewStyle().Bold(true),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		alert:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (p *prompter) println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

func (p *prompter) printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

// readLine prints prompt and returns the next input line without its
// line terminator. io.EOF is returned once input is exhausted.
func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readIntInRange asks until an integer in [min, max] is entered.
func (p *prompter) readIntInRange(prompt string, min, max int) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= min && n <= max {
			return n, nil
		}
		p.println(p.alert.Render("Invalid selection, please select from the available options."))
	}
}

// readShift asks until an integer is entered.
func (p *prompter) readShift() (int, error) {
	for {
		line, err := p.readLine("Enter the shift value (integer): ")
		if err != nil {
			return 0, err
		}
		shift, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return shift, nil
		}
		p.println(p.alert.Render("Invalid input. Please enter an integer number for the shift value."))
	}
}

// confirm asks a yes/no question; only "y" (any case) is a yes.
func (p *prompter) confirm(question string) (bool, error) {
	line, err := p.readLine(question + " (y/n): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

func (p *prompter) showMenu(title string) {
	rule := strings.Repeat("=", 42)
	p.println()
	p.println(rule)
	p.println(p.banner.Render(" " + title))
	p.println(rule)
	p.println("Please select from the following options:")
	p.println()
	p.println("1. Caesar Cipher Encryption")
	p.println("2. Caesar Cipher Decryption (known shift)")
	p.println("3. Caesar Cipher Brute-force Decryption (unknown shift)")
	p.println("4. Arithmetic Expression Evaluation")
	p.println("5. Exit")
	p.println()
}

func (p *prompter) readSource() (int, error) {
	p.println()
	p.println("Select input source:")
	p.println("1. Enter text from keyboard")
	p.println("2. Load text from file")
	return p.readIntInRange("Enter your choice: ", SourceKeyboard, SourceFile)
}

// readFile reads the file named on the next input line. ok is false when
// the file cannot be read or is empty and the user declines to go on.
func (p *prompter) readFile() (text string, ok bool, err error) {
	path, err := p.readLine("Enter the full path to the text file: ")
	if err != nil {
		return "", false, err
	}

	data, readErr := os.ReadFile(strings.TrimSpace(path))
	if readErr != nil {
		p.println(p.alert.Render("Error reading file: " + readErr.Error()))
		return "", false, nil
	}
	p.println("File read successfully.")

	if len(data) == 0 {
		proceed, err := p.confirm("Warning: File is empty. Do you want to proceed with empty input text?")
		if err != nil || !proceed {
			return "", false, err
		}
	}
	return string(data), true, nil
}

func (p *prompter) showCipherResult(operation, input string, shift int, result string) {
	p.println()
	p.println(p.header.Render("--- " + operation + " Result ---"))
	p.println("Input Text: " + input)
	p.printf("Shift Value: %d\n", shift)
	p.println("Result: " + result)
	p.println()
}

func (p *prompter) showCandidates(input string, candidates caesar.Candidates) {
	rule := strings.Repeat("-", 30)
	p.println()
	p.println(p.header.Render("--- Caesar Cipher Brute-force Decryption Results ---"))
	p.println("Input Text: " + input)
	p.println(rule)
	p.println(" Possible decrypted versions:")
	p.println(rule)
	for _, c := range candidates {
		p.printf("Shift %2d:  %s\n", c.Shift, c.Text)
	}
	p.println()
}

// FormatResult renders an evaluation result, e.g. "14" or "0.5".
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
