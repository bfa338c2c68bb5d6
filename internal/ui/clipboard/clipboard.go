// Package clipboard puts text on the user's clipboard, for copying the
// command log out of the dashboard.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Write copies text to the system clipboard. The host clipboard tools
// (pbcopy, wl-copy, xclip) are tried first; when none are usable, e.g.
// over SSH or inside tmux, the OSC 52 escape is emitted so the terminal
// itself performs the copy.
func Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return writeOSC52(text)
}

// writeOSC52 emits the OSC 52 clipboard sequence on stderr:
// ESC ] 52 ; c ; <base64 payload> BEL.
func writeOSC52(text string) error {
	payload := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stderr, "\x1b]52;c;%s\x07", payload)
	return err
}
