package widget

import (
	"context"
	"os"
	"os/exec"
)

// EditorConfig configures an external-editor capture.
type EditorConfig struct {
	Message string

	// Default is written to the temp file before the editor opens.
	Default string

	// Extension of the temp file, ".txt" when empty. Some editors key
	// syntax modes off it.
	Extension string

	// Command overrides editor discovery. Empty falls back to $VISUAL,
	// then $EDITOR, then vi.
	Command string
}

// Editor suspends the prompt loop, opens the user's editor on a temp file
// seeded with the default content, and returns the file's content after a
// clean exit. A failed launch or nonzero exit offers a retry.
func Editor(ctx context.Context, s *Session, cfg EditorConfig) (string, error) {
	if cfg.Extension == "" {
		cfg.Extension = ".txt"
	}

	tmp, err := os.CreateTemp("", "askstorm-*"+cfg.Extension)
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(cfg.Default); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	for {
		runErr := s.runEditor(ctx, editorCommand(cfg.Command), path)
		if runErr == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			content := string(data)
			s.Surf.Commit([]string{s.summaryLine(cfg.Message, "edited")})
			return content, nil
		}

		retry, err := Confirm(ctx, s, ConfirmConfig{
			Message: "The editor failed (" + runErr.Error() + "). Retry?",
			Default: true,
		})
		if err != nil {
			return "", err
		}
		if !retry {
			return "", ErrCancelled
		}
	}
}

// runEditor releases raw mode, runs the editor as a blocking child on the
// controlling terminal, and reacquires raw mode afterwards.
func (s *Session) runEditor(ctx context.Context, editor, path string) error {
	s.Surf.Clear()
	s.Surf.ShowCursor()

	if err := s.Term.Suspend(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()

	if err := s.Term.Resume(); err != nil {
		return err
	}
	s.Surf.HideCursor()
	return runErr
}

// editorCommand resolves the editor binary to launch.
func editorCommand(override string) string {
	if override != "" {
		return override
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}
