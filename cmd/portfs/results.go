package portfs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/arthur-debert/portfs/internal/version"
	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/ui/view"
)

type statResult struct {
	Path     string              `json:"path" yaml:"path" toml:"path"`
	Type     filesystem.FileType `json:"type" yaml:"type" toml:"type"`
	Perms    string              `json:"perms,omitempty" yaml:"perms,omitempty" toml:"perms,omitempty"`
	Mode     string              `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`
	Owner    string              `json:"owner,omitempty" yaml:"owner,omitempty" toml:"owner,omitempty"`
	Modified *time.Time          `json:"modified,omitempty" yaml:"modified,omitempty" toml:"modified,omitempty"`
	Changed  *time.Time          `json:"changed,omitempty" yaml:"changed,omitempty" toml:"changed,omitempty"`
	Accessed *time.Time          `json:"accessed,omitempty" yaml:"accessed,omitempty" toml:"accessed,omitempty"`
	Created  *time.Time          `json:"created,omitempty" yaml:"created,omitempty" toml:"created,omitempty"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func newStatResult(path string, st filesystem.FileStatus) statResult {
	r := statResult{Path: path, Type: st.Type()}
	if !st.Exists() {
		return r
	}
	if p := st.Perms(); p.Known() {
		r.Perms = p.String()
		r.Mode = fmt.Sprintf("%04o", uint32(p.Bits()))
	}
	if o := st.Owner(); o.Valid() {
		r.Owner = o.String()
	}
	times := st.Times()
	r.Modified = optionalTime(times.Modified)
	r.Changed = optionalTime(times.MetadataModified)
	r.Accessed = optionalTime(times.Accessed)
	r.Created = optionalTime(times.Created)
	return r
}

func (r statResult) View() view.View {
	f := &view.Fields{Title: r.Path}
	f.Add("type", r.Type.String())
	if r.Perms != "" {
		f.Add("perms", r.Perms+" ("+r.Mode+")")
	}
	if r.Owner != "" {
		f.Add("owner", r.Owner)
	}
	for _, tv := range []struct {
		key string
		t   *time.Time
	}{
		{"modified", r.Modified},
		{"changed", r.Changed},
		{"accessed", r.Accessed},
		{"created", r.Created},
	} {
		if tv.t != nil {
			f.Add(tv.key, tv.t.Format(time.RFC3339Nano))
		}
	}
	return f
}

type pathResult struct {
	Path string `json:"path" yaml:"path" toml:"path"`
}

func (r pathResult) View() view.View {
	return (&view.Fields{}).Add("path", r.Path)
}

type entryRow struct {
	Path  string              `json:"path" yaml:"path" toml:"path"`
	Type  filesystem.FileType `json:"type" yaml:"type" toml:"type"`
	Depth int                 `json:"depth" yaml:"depth" toml:"depth"`
}

type listResult struct {
	Root    string     `json:"root" yaml:"root" toml:"root"`
	Entries []entryRow `json:"entries" yaml:"entries" toml:"entries"`
}

func (r listResult) View() view.View {
	t := &view.Table{Title: r.Root, Headers: []string{"TYPE", "DEPTH", "PATH"}}
	for _, e := range r.Entries {
		typ := e.Type.String()
		t.AddRow(typ, typ, strconv.Itoa(e.Depth), e.Path)
	}
	return t
}

type dirRow struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

type dirsResult struct {
	Directories []dirRow `json:"directories" yaml:"directories" toml:"directories"`
}

func (r dirsResult) View() view.View {
	t := &view.Table{Headers: []string{"NAME", "PATH"}}
	for _, d := range r.Directories {
		if d.Error != "" {
			t.AddRow("not_found", d.Name, d.Error)
			continue
		}
		t.AddRow("directory", d.Name, d.Path)
	}
	return t
}

type equivResult struct {
	First      string `json:"first" yaml:"first" toml:"first"`
	Second     string `json:"second" yaml:"second" toml:"second"`
	Equivalent bool   `json:"equivalent" yaml:"equivalent" toml:"equivalent"`
}

func (r equivResult) View() view.View {
	return (&view.Fields{}).
		Add("first", r.First).
		Add("second", r.Second).
		Add("equivalent", strconv.FormatBool(r.Equivalent))
}

type mountResult struct {
	Path       string `json:"path" yaml:"path" toml:"path"`
	MountPath  string `json:"mount_path" yaml:"mount_path" toml:"mount_path"`
	Mountpoint bool   `json:"mountpoint" yaml:"mountpoint" toml:"mountpoint"`
}

func (r mountResult) View() view.View {
	return (&view.Fields{Title: r.Path}).
		Add("mount path", r.MountPath).
		Add("mount point", strconv.FormatBool(r.Mountpoint))
}

// changeResult reports a mkdir, rm or chmod.
type changeResult struct {
	Path    string `json:"path" yaml:"path" toml:"path"`
	Action  string `json:"action" yaml:"action" toml:"action"`
	Changed bool   `json:"changed" yaml:"changed" toml:"changed"`
	Perms   string `json:"perms,omitempty" yaml:"perms,omitempty" toml:"perms,omitempty"`
}

func (r changeResult) View() view.View {
	f := (&view.Fields{}).
		Add("path", r.Path).
		Add(r.Action, strconv.FormatBool(r.Changed))
	if r.Perms != "" {
		f.Add("perms", r.Perms)
	}
	return f
}

type versionResult struct {
	version.Info `yaml:",inline"`
}

func (r versionResult) View() view.View {
	return (&view.Fields{Title: "portfs"}).
		Add("version", r.Version).
		Add("commit", r.Commit).
		Add("built", r.Date).
		Add("platform", r.Platform)
}
