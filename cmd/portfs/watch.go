package portfs

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/portfs/pkg/fspath"
	"github.com/arthur-debert/portfs/pkg/ui/view"
	"github.com/arthur-debert/portfs/pkg/watch"
)

func parseEvents(s string) (watch.ChangeEvent, error) {
	if s == "" {
		return watch.AllEvents, nil
	}
	var ev watch.ChangeEvent
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "created":
			ev |= watch.Created
		case "removed":
			ev |= watch.Removed
		case "renamed":
			ev |= watch.Renamed
		case "modified":
			ev |= watch.Modified
		case "content":
			ev |= watch.ContentModified
		case "metadata":
			ev |= watch.MetadataModified
		case "rescan":
			ev |= watch.RescanRequired
		default:
			return watch.None, fmt.Errorf(MsgErrEvents, name)
		}
	}
	return ev, nil
}

type notificationResult struct {
	Path  string            `json:"path" yaml:"path" toml:"path"`
	Event watch.ChangeEvent `json:"event" yaml:"event" toml:"event"`
	Type  string            `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
}

func (r notificationResult) View() view.View {
	f := (&view.Fields{}).Add(r.Event.String(), r.Path)
	if r.Type != "" {
		f.Add("type", r.Type)
	}
	return f
}

func newWatchCmd(a *app) *cobra.Command {
	var (
		recursive bool
		events    string
	)
	cmd := &cobra.Command{
		Use:     "watch <path>",
		Short:   MsgWatchShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := parseEvents(events)
			if err != nil {
				return err
			}
			opts := watch.Options{Recursive: a.cfg.Watch.Recursive, Events: mask}
			if cmd.Flags().Changed("recursive") {
				opts.Recursive = recursive
			}

			m, err := watch.NewMonitor(a.fsys)
			if err != nil {
				return err
			}
			defer m.Close()

			root := fspath.New(args[0])
			if _, err := m.Watch(root, opts); err != nil {
				return err
			}
			ctx := cmd.Context()
			m.Start(ctx)
			if !a.format.Structured() {
				_ = a.renderer.RenderMessage(fmt.Sprintf(MsgWatching, root))
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				case err := <-m.Errors():
					return err
				case n, ok := <-m.Notifications():
					if !ok {
						return nil
					}
					res := notificationResult{Path: n.Path.String(), Event: n.Event}
					if n.TypeKnown() {
						res.Type = n.Type.String()
					}
					if err := a.renderer.RenderResult(res); err != nil {
						return err
					}
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", true, MsgFlagRecursive)
	cmd.Flags().StringVar(&events, "events", "", MsgFlagEvents)
	return cmd
}
