package cmd

import (
	"fmt"
	"os"

	"github.com/pc1500/basilisc/internal/lexer"
	"github.com/pc1500/basilisc/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval    string
	lexShowPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a BASIC file or inline program",
	Long: `Tokenize a BASIC program and print the resulting tokens.

Examples:
  # Tokenize a program file
  basilisc lex program.bas

  # Tokenize an inline program
  basilisc lex -e "10 PRINT 1"

  # Show token positions alongside each token
  basilisc lex --show-pos program.bas`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, name, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", name)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input)
	count := 0
	for {
		tok, err := l.Next()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		count++
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", count)
	}
	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-10s]", tok.Type)

	switch tok.Type {
	case token.EOF:
		output += " EOF"
	case token.EOL:
		output += " EOL"
	case token.INT:
		output += fmt.Sprintf(" %d", tok.IntValue)
	case token.STRING:
		output += fmt.Sprintf(" %q", tok.Literal)
	default:
		if tok.Literal != "" {
			output += fmt.Sprintf(" %q", tok.Literal)
		}
	}

	if lexShowPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}

// readSource resolves the lex/parse/tac/cfg subcommands' common input
// convention: an inline -e/--eval string, a single file argument, or
// (when neither is given) standard input.
func readSource(eval string, args []string) (input, name string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	content, err := readStdin()
	if err != nil {
		return "", "", err
	}
	return content, "<stdin>", nil
}
