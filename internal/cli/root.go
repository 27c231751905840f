// Package cli implements the repopactl command-line client. The stored
// session is loaded into a process-wide holder before any command runs;
// mutating subcommands consult the held role before touching the network,
// mirroring the server-side gate.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cgpe/repopa/internal/core/session"
)

var (
	flagServer string

	holder = session.NewHolder()
	client *Client
)

// defaultServer returns the default server URL, checking REPOPA_SERVER first.
func defaultServer() string {
	if s := os.Getenv("REPOPA_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for repopactl.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "repopactl",
		Short: "repopactl is the REPOPA registry client",
		Long:  "repopactl queries and maintains the REPOPA registry of entes, poderes, and marco normativo.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if sess := loadSession(); sess != nil {
				holder.Set(sess)
			}
			client = NewClient(flagServer, holder)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "REPOPA server URL (or REPOPA_SERVER env)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newEntesCmd(),
	)

	return root
}
