// Package watch reports changes below watched paths.
//
// Notifications are plain records: the path that changed, the new path of a
// rename when the backend knows it, the file type when known, and the event.
// A RescanRequired notification means the backend lost events; the consumer
// must re-enumerate the registration's root with a directory iterator.
package watch

import (
	"strings"

	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/fspath"
)

// ChangeEvent is a set of change kinds.
type ChangeEvent uint8

const (
	None             ChangeEvent = 0
	Created          ChangeEvent = 1 << 0
	Removed          ChangeEvent = 1 << 1
	Renamed          ChangeEvent = 1 << 2
	ContentModified  ChangeEvent = 1 << 3
	MetadataModified ChangeEvent = 1 << 4
	// RescanRequired cancels the registration's view of the tree.
	RescanRequired ChangeEvent = 1 << 5

	Modified  = ContentModified | MetadataModified
	AllEvents = Created | Removed | Renamed | Modified | RescanRequired
)

var eventNames = []struct {
	ev   ChangeEvent
	name string
}{
	{Created, "created"},
	{Removed, "removed"},
	{Renamed, "renamed"},
	{ContentModified, "content_modified"},
	{MetadataModified, "metadata_modified"},
	{RescanRequired, "rescan_required"},
}

func (e ChangeEvent) String() string {
	if e == None {
		return "none"
	}
	var parts []string
	for _, n := range eventNames {
		if e&n.ev != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// MarshalText renders the event by name for structured output.
func (e ChangeEvent) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Notification is one change below a registration.
type Notification struct {
	Path      fspath.Path
	RenamedTo fspath.Path
	Type      filesystem.FileType
	Event     ChangeEvent

	reg *Registration
}

// NewNotification builds a notification. reg may be nil.
func NewNotification(p, renamedTo fspath.Path, reg *Registration, ev ChangeEvent, typ filesystem.FileType) Notification {
	return Notification{Path: p, RenamedTo: renamedTo, Type: typ, Event: ev, reg: reg}
}

// Registration returns the registration that produced n.
func (n Notification) Registration() *Registration { return n.reg }

// Belongs reports whether n was produced by reg.
func (n Notification) Belongs(reg *Registration) bool {
	return reg != nil && n.reg == reg
}

// ExtractPath moves the path out of n, leaving an empty notification with
// event None that belongs to no registration.
func (n *Notification) ExtractPath() fspath.Path {
	p := n.Path
	*n = Notification{}
	return p
}

func (n Notification) TypeKnown() bool {
	return n.Type != filesystem.TypeNone && n.Type != filesystem.TypeUnknown
}

func (n Notification) Created() bool          { return n.Event&Created != 0 }
func (n Notification) Removed() bool          { return n.Event&Removed != 0 }
func (n Notification) Renamed() bool          { return n.Event&Renamed != 0 }
func (n Notification) ContentModified() bool  { return n.Event&ContentModified != 0 }
func (n Notification) MetadataModified() bool { return n.Event&MetadataModified != 0 }
func (n Notification) Modified() bool         { return n.Event&Modified != 0 }
func (n Notification) Rescan() bool           { return n.Event&RescanRequired != 0 }

// Canceled reports a notification that invalidates the consumer's state.
func (n Notification) Canceled() bool { return n.Rescan() }
