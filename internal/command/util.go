package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

type stateKey struct{}

type state struct {
	engine *hashing.Engine
	logger *slog.Logger
}

func loadState(ctx context.Context) (*state, error) {
	st, ok := ctx.Value(stateKey{}).(*state)
	if !ok {
		return nil, errors.New("config resolution failed")
	}
	return st, nil
}

// prompt reads one line from the command's input. On a terminal the message
// is shown and, with mask set, echo is disabled.
func prompt(cmd *cobra.Command, msg string, mask bool) ([]byte, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), msg); err != nil {
			return nil, err
		}
		if mask {
			line, err := term.ReadPassword(int(f.Fd()))
			_, _ = fmt.Fprintln(cmd.ErrOrStderr())
			return line, err
		}
	}
	return readLine(in)
}

// readLine reads up to the first newline one byte at a time, so nothing past
// the line is consumed from r. A trailing '\r' is dropped.
func readLine(r io.Reader) ([]byte, error) {
	var buf [1]byte
	var ret []byte

	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			ret = append(ret, buf[0])
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(ret) > 0 {
				break
			}
			return ret, err
		}
	}
	if len(ret) > 0 && ret[len(ret)-1] == '\r' {
		ret = ret[:len(ret)-1]
	}
	return ret, nil
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}
