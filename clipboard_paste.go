// clipboard_paste.go - OS clipboard access for the debug console's "paste"
// command, grounded on video_backend_ebiten.go's handleClipboardPaste

package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

// maxPasteBytes bounds how much clipboard text a single paste feeds into
// the console, matching the cap the teacher applies to pasted terminal input.
const maxPasteBytes = 4096

// readClipboardText reads the OS clipboard as text, lazily initializing
// the clipboard package on first use.
func readClipboardText() (string, error) {
	clipboardOnce.Do(func() {
		clipboardOK = clipboard.Init() == nil
	})
	if !clipboardOK {
		return "", fmt.Errorf("clipboard unavailable")
	}

	data := clipboard.Read(clipboard.FmtText)
	if len(data) > maxPasteBytes {
		data = data[:maxPasteBytes]
	}
	return string(data), nil
}
