package portfs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/fspath"
)

func parseDomain(s string) (filesystem.Domain, error) {
	switch s {
	case "user", "":
		return filesystem.DomainUser, nil
	case "local":
		return filesystem.DomainUserLocal, nil
	case "shared":
		return filesystem.DomainShared, nil
	default:
		return filesystem.DomainUser, fmt.Errorf(MsgErrDomain, s)
	}
}

func newDirsCmd(a *app) *cobra.Command {
	var (
		domain string
		create bool
	)
	cmd := &cobra.Command{
		Use:     "dirs",
		Short:   MsgDirsShort,
		Args:    cobra.NoArgs,
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDomain(domain)
			if err != nil {
				return err
			}
			opts := a.cfg.Dirs.StandardDirectoryOptions()
			if cmd.Flags().Changed("create") {
				opts = filesystem.StandardDirectoryNone
				if create {
					opts = filesystem.CreateIfMissing
				}
			}
			return a.renderer.RenderResult(collectDirs(a.fsys, d, opts))
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "user", MsgFlagDomain)
	cmd.Flags().BoolVar(&create, "create", false, MsgFlagCreate)
	return cmd
}

// collectDirs resolves every well-known directory, reporting failures per
// row instead of aborting.
func collectDirs(fsys *filesystem.FileSystem, d filesystem.Domain, opts filesystem.StandardDirectoryOptions) dirsResult {
	type lookup struct {
		name string
		fn   func() (fspath.Path, error)
	}
	standard := func(kind filesystem.DirectoryKind) func() (fspath.Path, error) {
		return func() (fspath.Path, error) { return fsys.StandardDirectoryPath(d, kind, opts) }
	}
	lookups := []lookup{
		{"home", filesystem.HomeDirectoryPath},
		{"temp", fsys.TempDirectoryPath},
		{"cwd", fsys.CurrentPath},
		{d.String() + " " + filesystem.AppData.String(), standard(filesystem.AppData)},
		{d.String() + " " + filesystem.Cache.String(), standard(filesystem.Cache)},
	}

	result := dirsResult{Directories: []dirRow{}}
	for _, l := range lookups {
		p, err := l.fn()
		row := dirRow{Name: l.name}
		if err != nil {
			row.Error = err.Error()
		} else {
			row.Path = p.String()
		}
		result.Directories = append(result.Directories, row)
	}
	return result
}
