// Command htmllex tokenizes an HTML snippet and prints its token stream,
// one line per token, or as JSON with --json. Malformed markup is never an
// error: unrecognized constructs come back as text tokens.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"
	"github.com/tdewolff/parse/v2"

	"github.com/lexkit/htmllex"
)

type options struct {
	JSON      bool `toml:"json"`
	Color     bool `toml:"color"`
	Positions bool `toml:"positions"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	var configPath string
	cmd := &cobra.Command{
		Use:          "htmllex [file]",
		Short:        "Print the token stream of an HTML snippet",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				var fileOpts options
				if _, err := toml.DecodeFile(configPath, &fileOpts); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				// Flags given on the command line win over the file.
				if !cmd.Flags().Changed("json") {
					opts.JSON = fileOpts.JSON
				}
				if !cmd.Flags().Changed("color") {
					opts.Color = fileOpts.Color
				}
				if !cmd.Flags().Changed("positions") {
					opts.Positions = fileOpts.Positions
				}
			}
			source, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			tokens := htmllex.New().Tokenize(source)
			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), tokens)
			}
			return writeText(cmd.OutOrStdout(), source, tokens, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "emit tokens as JSON")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "colorize text output")
	cmd.Flags().BoolVar(&opts.Positions, "positions", false, "prefix each token with its line:column")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with output defaults")
	return cmd
}

func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func kindLabel(tt htmllex.TokenType) string {
	return strcase.ToSnake(tt.String())
}

var kindColors = map[htmllex.TokenType]*color.Color{
	htmllex.TextToken:     color.New(color.FgWhite),
	htmllex.StartTagToken: color.New(color.FgCyan),
	htmllex.EndTagToken:   color.New(color.FgBlue),
	htmllex.CommentToken:  color.New(color.FgGreen),
	htmllex.DoctypeToken:  color.New(color.FgMagenta),
}

func writeText(w io.Writer, source string, tokens []htmllex.Token, opts options) error {
	src := []rune(source)
	for _, tok := range tokens {
		label := fmt.Sprintf("%-9s", kindLabel(tok.Type))
		if opts.Color {
			if c, ok := kindColors[tok.Type]; ok {
				label = c.Sprint(label)
			}
		}
		var pos string
		if opts.Positions {
			// The lexer counts runes; parse.Position wants bytes.
			offset := len(string(src[:tok.Raw.Start]))
			line, col, _ := parse.Position(strings.NewReader(source), offset)
			pos = fmt.Sprintf("%d:%d\t", line, col)
		}
		if _, err := fmt.Fprintf(w, "%s%s %s\n", pos, label, tok.String()); err != nil {
			return err
		}
	}
	return nil
}

type jsonToken struct {
	Kind        string            `json:"kind"`
	Name        string            `json:"name,omitzero"`
	Data        string            `json:"data,omitzero"`
	Attributes  map[string]string `json:"attributes,omitzero"`
	SelfClosing bool              `json:"selfClosing,omitzero"`
	Start       int               `json:"start"`
	End         int               `json:"end"`
}

func writeJSON(w io.Writer, tokens []htmllex.Token) error {
	out := make([]jsonToken, 0, len(tokens))
	for _, tok := range tokens {
		jt := jsonToken{
			Kind:  kindLabel(tok.Type),
			Start: tok.Raw.Start,
			End:   tok.Raw.End,
		}
		switch tok.Type {
		case htmllex.StartTagToken, htmllex.EndTagToken:
			jt.Name = tok.Data
			jt.SelfClosing = tok.SelfClosing
			if len(tok.Attr) > 0 {
				jt.Attributes = make(map[string]string, len(tok.Attr))
				for _, a := range tok.Attr {
					jt.Attributes[a.Key] = a.Val
				}
			}
		case htmllex.DoctypeToken:
			jt.Name = tok.Data
			jt.Data = tok.Text
		default:
			jt.Data = tok.Data
		}
		out = append(out, jt)
	}
	return json.MarshalWrite(w, out, jsontext.WithIndent("  "))
}
