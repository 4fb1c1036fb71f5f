package ui

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// LinkOpener hands a URL to something that can show it
type LinkOpener interface {
	Open(url string) error
}

// BrowserOpener opens links with the platform's default browser
type BrowserOpener struct{}

// Open starts the platform opener without waiting for it
func (BrowserOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

// openLink tries the opener first and falls back to the clipboard
func openLink(opener LinkOpener, url string) tea.Cmd {
	return func() tea.Msg {
		if opener != nil {
			if err := opener.Open(url); err == nil {
				return linkOpenedMsg{url: url}
			}
		}
		if err := copyToClipboard(url); err != nil {
			return linkOpenedMsg{url: url, err: err}
		}
		return linkOpenedMsg{url: url, copied: true}
	}
}
