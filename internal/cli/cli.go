package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	// Colors for different types of output
	userInputColor = color.New(color.FgWhite)               // White for user messages
	aiOutputColor  = color.New(color.FgCyan)                // Cyan for assistant replies
	titleColor     = color.New(color.FgMagenta, color.Bold) // Bold magenta for titles
	separatorColor = color.New(color.FgHiBlack)             // Dark grey for separators
	errorColor     = color.New(color.FgRed)                 // Red for errors
	infoColor      = color.New(color.FgYellow)              // Yellow for ids and notices
	promptColor    = color.New(color.FgHiBlue)              // Bright blue for prompts

	width = terminalWidth()
)

func terminalWidth() int {
	if w := goterm.Width(); w > 0 {
		return w
	}
	return 80
}

// Width of the terminal, 80 when unknown.
func Width() int {
	return width
}

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	separatorColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	if leftWidth < 0 {
		leftWidth = 0
	}
	separator1 := strings.Repeat("-", leftWidth)
	rightWidth := width - len(title) - len(separator1)
	if rightWidth < 0 {
		rightWidth = 0
	}
	separator2 := strings.Repeat("-", rightWidth)
	output := fmt.Sprintf("%s%s%s", separator1, title, separator2)
	titleColor.Println(output)
}

// UserInput printed to cli.
func UserInput(text string, args ...any) {
	userInputColor.Printf(text, args...)
}

// AIOutput printed to cli.
func AIOutput(text string, args ...any) {
	if len(args) == 0 {
		text = strings.ReplaceAll(text, "%", "%%")
	}
	aiOutputColor.Printf(text, args...)
}

// Info printed to cli.
func Info(text string, args ...any) {
	infoColor.Printf(text, args...)
}

// Error printed to cli.
func Error(text string, args ...any) {
	errorColor.Printf(text, args...)
}

// PromptUser for a line of input.
func PromptUser(prompt, historyFile string) (string, error) {
	config := &readline.Config{
		Prompt:            promptColor.Sprint(prompt),
		InterruptPrompt:   "^C",
		HistoryFile:       historyFile,
		HistorySearchFold: true,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return "", err
	}
	defer rl.Close()
	return rl.Readline()
}

// QueryUser a yes/no question.
func QueryUser(question string) bool {
	surveyQuestion := &survey.Confirm{
		Message: question,
	}
	confirm := false
	survey.AskOne(surveyQuestion, &confirm)
	return confirm
}
