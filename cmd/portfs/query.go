package portfs

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/fspath"
	"github.com/arthur-debert/portfs/pkg/logging"
)

func newStatCmd(a *app) *cobra.Command {
	var noFollow bool
	cmd := &cobra.Command{
		Use:     "stat <path>",
		Short:   MsgStatShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fspath.New(args[0])
			query := a.fsys.Status
			if noFollow {
				query = a.fsys.SymlinkStatus
			}
			st, err := query(p)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(newStatResult(p.String(), st))
		},
	}
	cmd.Flags().BoolVarP(&noFollow, "no-follow", "P", false, MsgFlagNoFollow)
	return cmd
}

func newCanonicalCmd(a *app) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:     "canonical <path>",
		Short:   MsgCanonicalShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fspath.New(args[0])
			var (
				c   fspath.Path
				err error
			)
			if base != "" {
				c, err = a.fsys.Canonical(p, fspath.New(base))
			} else {
				c, err = a.fsys.CanonicalCwd(p)
			}
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(pathResult{Path: c.String()})
		},
	}
	cmd.Flags().StringVar(&base, "base", "", MsgFlagBase)
	return cmd
}

func newLsCmd(a *app) *cobra.Command {
	var (
		recursive bool
		depth     int
		follow    bool
		all       bool
	)
	cmd := &cobra.Command{
		Use:     "ls [path]",
		Short:   MsgLsShort,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := fspath.New(".")
			if len(args) == 1 {
				root = fspath.New(args[0])
			}

			opts := a.cfg.Iterate.DirectoryOptions()
			if cmd.Flags().Changed("follow") {
				opts &^= filesystem.FollowDirectorySymlink
				if follow {
					opts |= filesystem.FollowDirectorySymlink
				}
			}
			if !all {
				opts |= filesystem.SkipDotAndDotDot
			}
			maxDepth := a.cfg.Iterate.MaxDepth
			if cmd.Flags().Changed("depth") {
				maxDepth = depth
			}

			result, err := list(a.fsys, root, opts, recursive, maxDepth)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, MsgFlagRecursive)
	cmd.Flags().IntVarP(&depth, "depth", "d", -1, MsgFlagDepth)
	cmd.Flags().BoolVarP(&follow, "follow", "L", false, MsgFlagFollow)
	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	return cmd
}

// list collects the entries below root. A negative maxDepth means no limit.
func list(fsys *filesystem.FileSystem, root fspath.Path, opts filesystem.DirectoryOptions, recursive bool, maxDepth int) (listResult, error) {
	logger := logging.GetLogger("cmd.ls")
	done := logging.LogOperationStart(logger, "list")
	defer done()

	newIter := fsys.NewDirectoryIterator
	if recursive {
		newIter = fsys.NewRecursiveDirectoryIterator
	}
	it, err := newIter(root, opts)
	if err != nil {
		return listResult{}, err
	}
	defer it.Close()

	result := listResult{Root: root.String(), Entries: []entryRow{}}
	for it.Next() {
		entry := it.Entry()
		row := entryRow{Path: entry.Path().String(), Depth: it.Depth()}
		if st, err := entry.SymlinkStatus(); err == nil {
			row.Type = st.Type()
		} else {
			logger.Debug().Err(err).Str("path", row.Path).Msg("status unavailable")
		}
		result.Entries = append(result.Entries, row)

		if recursive && maxDepth >= 0 && it.Depth() >= maxDepth {
			it.DisableRecursionPending()
		}
	}
	return result, it.Err()
}

func newEquivCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "equiv <path> <path>",
		Short:   MsgEquivShort,
		Args:    cobra.ExactArgs(2),
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			same, err := a.fsys.Equivalent(fspath.New(args[0]), fspath.New(args[1]))
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(equivResult{First: args[0], Second: args[1], Equivalent: same})
		},
	}
}

func newMountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mount <path>",
		Short:   MsgMountShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fspath.New(args[0])
			mp, err := a.fsys.MountPath(p)
			if err != nil {
				return err
			}
			isMount, err := a.fsys.IsMountpoint(p)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(mountResult{Path: p.String(), MountPath: mp.String(), Mountpoint: isMount})
		},
	}
}
