package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nof-sh/textkit/batch"
	"github.com/nof-sh/textkit/caesar"
	"github.com/nof-sh/textkit/calc"
	"github.com/nof-sh/textkit/console"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	shift     int
	inputFile string
	workers   int
)

// encryptCmd encrypts text with a known shift
var encryptCmd = &cobra.Command{
	Use:   "encrypt [text...]",
	Short: "Encrypt text with a Caesar shift",
	Long: `Shifts every Latin and Cyrillic letter forward by --shift positions within
its own alphabet. Other characters are copied unchanged. The text comes from
the arguments, --file, or stdin.

Example:
  textkit encrypt --shift 3 Hello World`,
	RunE: runCipher(caesar.Encrypt),
}

// decryptCmd reverses encrypt for a known shift
var decryptCmd = &cobra.Command{
	Use:   "decrypt [text...]",
	Short: "Decrypt text encrypted with a known Caesar shift",
	RunE:  runCipher(caesar.Decrypt),
}

// bruteForceCmd lists every distinct decryption
var bruteForceCmd = &cobra.Command{
	Use:     "bruteforce [text...]",
	Aliases: []string{"brute-force"},
	Short:   "Decrypt text with every possible shift",
	RunE:    runBruteForce,
}

// evalCmd evaluates one arithmetic expression
var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluates an infix expression with decimal numbers, + - * / and
parentheses. Whitespace is ignored and an empty expression evaluates to 0.

Example:
  textkit eval "(2+3)*4"`,
	RunE: runEval,
}

// batchCmd evaluates a file of expressions, one per line
var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Evaluate one expression per line of a file concurrently",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		cmd.Flags().IntVarP(&shift, "shift", "s", 0, "Number of positions to shift each letter")
		_ = cmd.MarkFlagRequired("shift")
	}
	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd, bruteForceCmd, evalCmd} {
		cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read the input from a file")
	}
	batchCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent evaluations (default from config)")
}

// readInput returns the text for a command: --file, else the joined
// arguments, else stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func runCipher(fn func(string, int) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		logger.Debug("cipher", zap.String("command", cmd.Name()), zap.Int("shift", shift))
		fmt.Fprintln(cmd.OutOrStdout(), fn(text, shift))
		return nil
	}
}

func runBruteForce(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	candidates := caesar.BruteForce(text)
	logger.Debug("brute force", zap.Int("candidates", len(candidates)))
	for _, c := range candidates {
		fmt.Fprintf(cmd.OutOrStdout(), "Shift %2d:  %s\n", c.Shift, c.Text)
	}
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	expression, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	value, err := calc.Evaluate(expression)
	if err != nil {
		logger.Debug("evaluation failed", zap.String("expression", expression), zap.Error(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), console.FormatResult(value))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open expressions: %w", err)
	}
	defer f.Close()

	jobs, err := batch.ReadLines(f)
	if err != nil {
		return err
	}

	n := workers
	if n <= 0 {
		n = cfg.Batch.Workers
	}
	logger.Debug("batch started", zap.Int("expressions", len(jobs)), zap.Int("workers", n))

	results, err := batch.Evaluate(commandContext(cmd), jobs, n)
	if err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "%d: %s => %s\n", r.Line, r.Expression, console.DescribeError(r.Err))
			continue
		}
		fmt.Fprintf(out, "%d: %s => %s\n", r.Line, r.Expression, console.FormatResult(r.Value))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}
