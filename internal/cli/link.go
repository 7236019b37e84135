package cli

import (
	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/launch"
	"github.com/spf13/cobra"
)

func newLinkCmd(a *app) *cobra.Command {
	var f requestFlags
	cmd := &cobra.Command{
		Use:   "link",
		Short: MsgLinkShort,
		Long: `Link prints the start link for a workspace without reading a manifest.
The server comes from --server, then the config (or WORKSPACE_LAUNCH_SERVER),
then ` + launch.DefaultServer + `.`,
		Example: `  wslaunch link --id demo --owner alice --token s3cret`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.id == "" {
				return errors.New(errors.ErrInvalidInput, "--id is required")
			}
			r := a.renderer(cmd)
			return r.Message(launch.BuildLink(launch.LinkOptions{
				Server:      launch.ResolveServer(firstNonEmpty(f.server, a.cfg.Server)),
				WorkspaceID: f.id,
				OwnerID:     firstNonEmpty(f.owner, a.cfg.OwnerID),
				Token:       f.token,
			}))
		},
	}
	f.bind(cmd, true)
	return cmd
}
