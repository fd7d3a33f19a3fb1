package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"runecursor/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "runecursor",
	Short: "Character cursor debugging tool",
	Long:  `runecursor walks the characters of a text and reports the byte offsets a lexer built on the cursor would see`,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
