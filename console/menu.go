// Package console is the interactive menu in front of the cipher and the
// expression evaluator. It reads choices and text line by line and renders
// results; all computation is delegated to the caesar and calc packages.
package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/nof-sh/textkit/caesar"
	"github.com/nof-sh/textkit/calc"
	"github.com/nof-sh/textkit/config"
	"go.uber.org/zap"
)

// Main menu choices.
const (
	ChoiceEncrypt = iota + 1
	ChoiceDecrypt
	ChoiceBruteForce
	ChoiceEvaluate
	ChoiceExit
)

// Menu runs the main loop until the user exits or input ends.
type Menu struct {
	cfg     config.MenuConfig
	term    *prompter
	logger  *zap.Logger
	running bool
}

// New returns a menu reading from in and writing to out.
func New(in io.Reader, out io.Writer, cfg config.MenuConfig, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		cfg:    cfg,
		term:   newPrompter(in, out),
		logger: logger.With(zap.String("session", uuid.NewString())),
	}
}

// Run shows the menu and dispatches choices. End of input stops the loop
// without error.
func (m *Menu) Run(ctx context.Context) error {
	m.running = true
	m.logger.Debug("menu started")

	for m.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := m.step()
		if errors.Is(err, io.EOF) {
			m.logger.Debug("input closed")
			return nil
		}
		if err != nil {
			return err
		}
	}

	m.logger.Debug("menu finished")
	return nil
}

// step handles one menu selection.
func (m *Menu) step() error {
	m.term.showMenu(m.cfg.Title)
	choice, err := m.term.readIntInRange("Enter your selection: ", ChoiceEncrypt, ChoiceExit)
	if err != nil {
		return err
	}

	var ok bool
	switch choice {
	case ChoiceEncrypt:
		ok, err = m.handleShift("Caesar Cipher Encryption", "encrypt", caesar.Encrypt)
	case ChoiceDecrypt:
		ok, err = m.handleShift("Caesar Cipher Decryption", "decrypt", caesar.Decrypt)
	case ChoiceBruteForce:
		ok, err = m.handleBruteForce()
	case ChoiceEvaluate:
		ok, err = m.handleEvaluate()
	case ChoiceExit:
		m.exit()
		return nil
	}
	if err != nil {
		return err
	}

	if ok && m.cfg.ConfirmContinue {
		m.term.println()
		more, err := m.term.confirm("Continue?")
		if err != nil {
			return err
		}
		if !more {
			m.exit()
		}
	}
	return nil
}

// handleShift runs encryption or decryption with a user supplied shift.
func (m *Menu) handleShift(operation, verb string, fn func(string, int) string) (bool, error) {
	m.term.println()
	m.term.println(m.term.header.Render("--- " + operation + " selected ---"))

	text, ok, err := m.readText(verb)
	if err != nil || !ok {
		return false, err
	}
	shift, err := m.term.readShift()
	if err != nil {
		return false, err
	}

	result := fn(text, shift)
	m.logger.Debug("cipher applied", zap.String("operation", verb), zap.Int("shift", shift), zap.Int("length", len(text)))
	m.term.showCipherResult(operation, text, shift, result)
	return true, nil
}

func (m *Menu) handleBruteForce() (bool, error) {
	m.term.println()
	m.term.println(m.term.header.Render("--- Brute-force Caesar Cipher Decryption ---"))

	text, ok, err := m.readText("decrypt")
	if err != nil || !ok {
		return false, err
	}

	m.term.println()
	m.term.println("Attempting all possible shifts...")
	candidates := caesar.BruteForce(text)
	m.logger.Debug("brute force finished", zap.Int("candidates", len(candidates)))
	m.term.showCandidates(text, candidates)
	return true, nil
}

// handleEvaluate reports evaluation errors to the user and returns false so
// that "Continue?" is not asked right after a failure.
func (m *Menu) handleEvaluate() (bool, error) {
	m.term.println()
	m.term.println(m.term.header.Render("--- Arithmetic Expression Evaluation selected ---"))

	expression, ok, err := m.readText("evaluate")
	if err != nil || !ok {
		return false, err
	}

	value, evalErr := calc.Evaluate(expression)
	if evalErr != nil {
		m.logger.Debug("evaluation failed", zap.String("expression", expression), zap.Error(evalErr))
		m.term.println(m.term.alert.Render(DescribeError(evalErr)))
		return false, nil
	}

	m.logger.Debug("evaluated", zap.String("expression", expression), zap.Float64("value", value))
	m.term.println("Expression: " + expression)
	m.term.println("Result: " + FormatResult(value))
	return true, nil
}

// readText asks for the input source and reads the text from it.
func (m *Menu) readText(verb string) (string, bool, error) {
	source, err := m.term.readSource()
	if err != nil {
		return "", false, err
	}

	if source == SourceKeyboard {
		m.term.println("You selected keyboard input.")
		line, err := m.term.readLine("Enter text to " + verb + ": ")
		if err != nil {
			return "", false, err
		}
		return strings.TrimSpace(line), true, nil
	}

	m.term.println("You selected file input.")
	return m.term.readFile()
}

func (m *Menu) exit() {
	m.term.println()
	m.term.println("Exiting application. Have a great day!")
	m.term.println()
	m.running = false
}

// DescribeError renders an evaluation error for the user. Syntax errors
// are prefixed with "Invalid expression."
func DescribeError(err error) string {
	var evalErr *calc.Error
	if errors.As(err, &evalErr) && !evalErr.Kind.IsArithmetic() {
		return "Error: Invalid expression. " + evalErr.Error()
	}
	return "Error: " + err.Error()
}
