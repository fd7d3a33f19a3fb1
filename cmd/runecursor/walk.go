package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"runecursor"
)

var walkCmd = &cobra.Command{
	Use:   "walk [flags] [file]",
	Short: "Walk the characters of a text",
	Long:  `Walk prints every character of the input with its byte offset, encoded size and display width. Reads stdin when no file is given`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWalk,
}

func init() {
	walkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// CharOutput — одна запись на символ входа.
type CharOutput struct {
	Offset uint32 `json:"offset"`
	Char   string `json:"char"`
	Size   uint32 `json:"size"`
	Width  int    `json:"width"`
}

func runWalk(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	data, err := readInput(args)
	if err != nil {
		return err
	}
	// Валидность кодировки — предусловие курсора, проверяем на входе
	if !utf8.Valid(data) {
		return fmt.Errorf("input is not valid UTF-8")
	}

	records := collectChars(string(data))

	switch format {
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		return formatCharsPretty(os.Stdout, records, len(data), useColor)
	case "json":
		return formatCharsJSON(os.Stdout, records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		// #nosec G304 -- path is a user-supplied CLI argument
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// collectChars прогоняет курсор по тексту и собирает запись на каждый символ.
func collectChars(src string) []CharOutput {
	cur := runecursor.New(src)
	var out []CharOutput
	for {
		off := cur.BytePos()
		r, ok := cur.Bump()
		if !ok {
			break
		}
		out = append(out, CharOutput{
			Offset: off,
			Char:   string(r),
			Size:   cur.BytePos() - off,
			Width:  runewidth.RuneWidth(r),
		})
	}
	return out
}

// formatCharsPretty выводит записи в человекочитаемом формате
func formatCharsPretty(w io.Writer, records []CharOutput, totalBytes int, useColor bool) error {
	offsetColor := color.New(color.FgCyan)
	if !useColor {
		offsetColor.DisableColor()
	}

	for _, rec := range records {
		// Выравниваем колонку символа по его экранной ширине
		pad := 2 - rec.Width
		if pad < 0 {
			pad = 0
		}
		if _, err := fmt.Fprintf(w, "%s: %q%*s size=%d width=%d\n",
			offsetColor.Sprintf("%4d", rec.Offset),
			rec.Char, pad, "",
			rec.Size, rec.Width); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d characters, %d bytes\n", len(records), totalBytes)
	return err
}

// formatCharsJSON выводит записи в JSON формате
func formatCharsJSON(w io.Writer, records []CharOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
