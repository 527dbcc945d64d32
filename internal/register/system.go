package register

import "github.com/atotto/clipboard"

// SystemClipboard is a Clipboard backed by the operating system
// clipboard.
type SystemClipboard struct{}

// SystemClipboardAvailable reports whether the platform has a clipboard
// tool the system clipboard can use.
func SystemClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// Get reads the clipboard.
func (SystemClipboard) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set replaces the clipboard content.
func (SystemClipboard) Set(content string) error {
	return clipboard.WriteAll(content)
}
