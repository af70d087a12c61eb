// Package opener resolves the command used to open a file from the
// explorer. It only builds the exec.Cmd; the UI hands it to the
// terminal via tea.ExecProcess and regains the screen when the editor
// exits, so there is no process supervision here.
package opener

import (
	"os"
	"os/exec"
	"strings"
)

const fallbackEditor = "vi"

// EditorCommand returns the configured editor invocation split into
// command and arguments. $VISUAL wins over $EDITOR; both may carry
// flags ("code --wait"). Falls back to vi.
func EditorCommand() (string, []string) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			parts := strings.Fields(v)
			return parts[0], parts[1:]
		}
	}
	return fallbackEditor, nil
}

// Open builds the command that opens path in the user's editor.
func Open(path string) *exec.Cmd {
	editor, args := EditorCommand()
	cmd := exec.Command(editor, append(args, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
