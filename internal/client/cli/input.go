package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"golang.org/x/term"
)

// Seams for tests: prompts go through these variables so flows can be
// exercised without a terminal.
var (
	getSimpleTextFn = getSimpleText
	getPasswordFn   = getPassword
)

func getSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	printfFn("%s: ", prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// getPassword reads without echo when stdin is a terminal.
func getPassword(prompt string) (string, error) {
	printfFn("%s: ", prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	password := string(b)
	common.WipeByteArray(b)
	return password, nil
}
