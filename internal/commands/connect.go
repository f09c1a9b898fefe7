package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
)

func init() {
	Register(&ConnectCmd{})
}

// ConnectCmd implements the connect command: store the remote data
// store credentials.
type ConnectCmd struct {
	backend string
	url     string
	apiKey  string
	conn    string
}

func (c *ConnectCmd) Name() string      { return "connect" }
func (c *ConnectCmd) Aliases() []string { return nil }
func (c *ConnectCmd) Synopsis() string  { return "Store remote data store credentials" }
func (c *ConnectCmd) Usage() string {
	return "taskboard connect --url <project-url> --key <api-key> | --backend postgres --conn <conn-string>"
}
func (c *ConnectCmd) NeedsStore() bool { return false }

func (c *ConnectCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.backend, "backend", config.BackendREST, "")
	fs.StringVar(&c.url, "url", "", "")
	fs.StringVar(&c.apiKey, "key", "", "")
	fs.StringVar(&c.conn, "conn", "", "")
}

func (c *ConnectCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	creds := &config.Credentials{
		Backend:    c.backend,
		URL:        c.url,
		APIKey:     c.apiKey,
		ConnString: c.conn,
	}

	switch creds.Backend {
	case config.BackendREST:
		if creds.URL == "" || creds.APIKey == "" {
			fmt.Fprintln(errOut, "error: --url and --key required for the rest backend")
			return exitcode.UserError
		}
	case config.BackendPostgres:
		if creds.ConnString == "" {
			fmt.Fprintln(errOut, "error: --conn required for the postgres backend")
			return exitcode.UserError
		}
	default:
		fmt.Fprintf(errOut, "error: unknown backend: %s\n", creds.Backend)
		return exitcode.UserError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := cfg.SaveCredentials(creds); err != nil {
		fmt.Fprintf(errOut, "error: failed to save credentials: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
