package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/vmunix/nyaagrab/pkg/nyaa"
)

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// confirmContinue asks whether to keep probing after a not-found episode.
// Default is no; a non-interactive stdin always stops.
func confirmContinue() bool {
	if !stdinIsTerminal() {
		return false
	}
	fmt.Print("Continue? [y/N] ")
	input, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}

// terminalChooser presents ranked candidates and reads an index from
// stdin. Empty input picks the top-ranked candidate; a non-interactive
// stdin does the same without prompting.
type terminalChooser struct{}

func (terminalChooser) Choose(query string, candidates []nyaa.Torrent) (int, error) {
	fmt.Printf("Found multiple matches for %s:\n", query)
	fmt.Println(renderCandidates(candidates))

	if !stdinIsTerminal() {
		return 0, nil
	}

	fmt.Print("Choose [0]: ")
	input, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	choice, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid choice %q: %w", input, err)
	}
	return choice, nil
}
