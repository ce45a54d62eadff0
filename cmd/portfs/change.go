package portfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/fspath"
)

// parseMode reads "755", "+111" or "-022" into Perms with the matching
// modifier.
func parseMode(s string) (filesystem.Perms, error) {
	var modifier filesystem.Perms
	digits := s
	switch {
	case strings.HasPrefix(s, "+"):
		modifier, digits = filesystem.AddPerms, s[1:]
	case strings.HasPrefix(s, "-"):
		modifier, digits = filesystem.RemovePerms, s[1:]
	}
	v, err := strconv.ParseUint(digits, 8, 32)
	if err != nil || digits == "" || filesystem.Perms(v)&^filesystem.PermsMask != 0 {
		return filesystem.PermsNone, fmt.Errorf(MsgErrMode, s)
	}
	return filesystem.Perms(v) | modifier, nil
}

func newMkdirCmd(a *app) *cobra.Command {
	var (
		parents bool
		mode    string
		from    string
	)
	cmd := &cobra.Command{
		Use:     "mkdir <path>",
		Short:   MsgMkdirShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "change",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fspath.New(args[0])
			perm, err := parseMode(mode)
			if err != nil {
				return err
			}
			existed, err := a.fsys.IsDirectory(p)
			if err != nil {
				return err
			}

			switch {
			case from != "":
				err = a.fsys.CreateDirectoryFrom(p, fspath.New(from))
			case parents:
				err = a.fsys.CreateDirectories(p, perm)
			default:
				err = a.fsys.CreateDirectory(p, perm)
			}
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(changeResult{Path: p.String(), Action: "created", Changed: !existed})
		},
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, MsgFlagParents)
	cmd.Flags().StringVarP(&mode, "mode", "m", "777", MsgFlagMode)
	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <path>",
		Short:   MsgRmShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "change",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fspath.New(args[0])
			if err := a.fsys.Remove(p); err != nil {
				return err
			}
			return a.renderer.RenderResult(changeResult{Path: p.String(), Action: "removed", Changed: true})
		},
	}
}

func newChmodCmd(a *app) *cobra.Command {
	var noFollow bool
	cmd := &cobra.Command{
		Use:     "chmod [--] <mode> <path>",
		Short:   MsgChmodShort,
		Long:    MsgChmodLong,
		Args:    cobra.ExactArgs(2),
		GroupID: "change",
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := parseMode(args[0])
			if err != nil {
				return err
			}
			if !noFollow {
				perm |= filesystem.ResolveSymlinks
			}
			p := fspath.New(args[1])
			if err := a.fsys.Permissions(p, perm); err != nil {
				return err
			}
			st, err := a.fsys.Status(p)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(changeResult{
				Path:    p.String(),
				Action:  "changed",
				Changed: true,
				Perms:   st.Perms().String(),
			})
		},
	}
	cmd.Flags().BoolVarP(&noFollow, "no-follow", "P", false, MsgFlagNoFollow)
	return cmd
}
