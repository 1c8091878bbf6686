package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wouterdebie/salph/alphabet"
	"github.com/wouterdebie/salph/format"
)

// alphabetEnvVar overrides the default alphabet.
const alphabetEnvVar = "SALPH"

func newRootCmd() *cobra.Command {
	var (
		alphabetName string
		separator    string
		disableColor bool
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "salph [sentence]...",
		Short: "Spell out words using spelling alphabets",
		Long: `salph spells out words using spelling alphabets, such as the
NATO phonetic alphabet. The sentence comes from the arguments, or from
a line on stdin when no arguments are given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := alphabet.Load(alphabetName)
			if err != nil {
				return err
			}

			sentence := args
			if len(sentence) == 0 {
				sentence = readSentence(cmd.InOrStdin())
			}

			results := make([]format.Result, len(sentence))
			for i, word := range sentence {
				results[i] = format.Result{Input: word, Spellings: a.Spell(word)}
			}

			var encoder format.Encoder
			switch outputFormat {
			case "text":
				encoder = format.NewTextEncoder(cmd.OutOrStdout(), separator, disableColor)
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(results); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&alphabetName, "alphabet", "a", defaultAlphabetName(), "alphabet to use (env "+alphabetEnvVar+")")
	cmd.Flags().StringVarP(&separator, "separator", "S", " ", "separator between spelled-out words")
	cmd.Flags().BoolVarP(&disableColor, "disable-color", "d", false, "disable colored output (word = green, number = yellow)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text or json)")

	return cmd
}

// defaultAlphabetName honors the environment override.
func defaultAlphabetName() string {
	if name := os.Getenv(alphabetEnvVar); name != "" {
		return name
	}
	return "nato"
}

// readSentence reads one line and splits it into words.
func readSentence(r io.Reader) []string {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return nil
	}
	return strings.Split(line, " ")
}
