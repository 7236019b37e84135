package cli

import (
	"github.com/arthur-debert/wslaunch/pkg/diff"
	"github.com/arthur-debert/wslaunch/pkg/filesystem"
	"github.com/arthur-debert/wslaunch/pkg/logging"
	"github.com/arthur-debert/wslaunch/pkg/manifest"
	"github.com/arthur-debert/wslaunch/pkg/template"
	"github.com/arthur-debert/wslaunch/pkg/workspace"
	"github.com/spf13/cobra"
)

// requestFlags override manifest fields
type requestFlags struct {
	id     string
	server string
	owner  string
	token  string
}

func (f *requestFlags) bind(cmd *cobra.Command, withLink bool) {
	cmd.Flags().StringVar(&f.id, "id", "", "workspace identifier (overrides the manifest)")
	if withLink {
		cmd.Flags().StringVar(&f.server, "server", "", "server address (overrides manifest, config and WORKSPACE_LAUNCH_SERVER)")
		cmd.Flags().StringVar(&f.owner, "owner", "", "owner identifier")
		cmd.Flags().StringVar(&f.token, "token", "", "access token")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// options reads the manifest at path and applies flags and configuration
func (a *app) options(path string, f *requestFlags) (workspace.Options, error) {
	m, err := manifest.Load(filesystem.NewOS(), path)
	if err != nil {
		return workspace.Options{}, err
	}
	nodes, err := m.Nodes()
	if err != nil {
		return workspace.Options{}, err
	}
	return workspace.Options{
		WorkspaceID: firstNonEmpty(f.id, m.ID),
		Structure:   nodes,
		Server:      firstNonEmpty(f.server, m.Server, a.cfg.Server),
		OwnerID:     firstNonEmpty(f.owner, m.OwnerID, a.cfg.OwnerID),
		Token:       firstNonEmpty(f.token, m.Token),
	}, nil
}

func (a *app) engine() (*workspace.Engine, error) {
	store, err := a.cfg.OpenStore()
	if err != nil {
		return nil, err
	}
	p, err := a.cfg.Paths()
	if err != nil {
		return nil, err
	}
	return workspace.NewEngine(
		workspace.WithStore(store),
		workspace.WithRegistry(a.registry),
		workspace.WithPaths(p),
	)
}

func newMaterializeCmd(a *app) *cobra.Command {
	var f requestFlags
	cmd := &cobra.Command{
		Use:   "materialize <manifest>",
		Short: MsgMaterializeShort,
		Long: `Materialize normalizes the manifest's structure and writes it to
<data-root>/templates/<id>, replacing anything there, unless this process
already wrote the same content for that identifier. It then prints the
start link.`,
		Example: `  # Write the template and print the link
  wslaunch materialize workspace.yaml

  # Use another identifier and owner
  wslaunch materialize workspace.toml --id lesson-2 --owner alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.materialize")
			done := logging.LogOperationStart(logger, "materialize")
			defer done()

			opts, err := a.options(args[0], &f)
			if err != nil {
				return err
			}
			engine, err := a.engine()
			if err != nil {
				return err
			}
			result, err := engine.Create(opts)
			if err != nil {
				return err
			}

			r := a.renderer(cmd)
			location := ""
			if result.Location != "" {
				location = engine.Paths().Relative(result.Location)
			}
			return r.Result(result, location)
		},
	}
	f.bind(cmd, true)
	return cmd
}

func newPlanCmd(a *app) *cobra.Command {
	var f requestFlags
	cmd := &cobra.Command{
		Use:   "plan <manifest>",
		Short: MsgPlanShort,
		Long: `Plan prints the normalized template tree and its fingerprint. It never
touches the backing store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(args[0], &f)
			if err != nil {
				return err
			}
			spec, err := template.Build(opts.WorkspaceID, opts.Structure)
			if err != nil {
				return err
			}

			r := a.renderer(cmd)
			return r.Plan(spec, template.Fingerprint(spec))
		},
	}
	f.bind(cmd, false)
	return cmd
}

func newDiffCmd(a *app) *cobra.Command {
	var f requestFlags
	var context int
	cmd := &cobra.Command{
		Use:   "diff <manifest>",
		Short: MsgDiffShort,
		Long: `Diff compares the template subtree in the backing store with the
manifest and prints the files and directories materialize would add,
remove or rewrite.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(args[0], &f)
			if err != nil {
				return err
			}
			engine, err := a.engine()
			if err != nil {
				return err
			}
			spec, err := engine.Prepare(opts.WorkspaceID, opts.Structure)
			if err != nil {
				return err
			}

			r := a.renderer(cmd)
			if !engine.HasStore() {
				return r.Message(MsgNoStoreDiff)
			}

			changes, err := diff.Compute(engine.Store(), engine.Paths().TemplateDir(spec.ID), spec, diff.Options{Context: context})
			if err != nil {
				return err
			}
			return r.Changes(changes)
		},
	}
	f.bind(cmd, false)
	cmd.Flags().IntVarP(&context, "context", "U", 3, "lines of context in patches")
	return cmd
}
