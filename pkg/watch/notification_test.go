package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/fspath"
)

func TestNotificationBelongsToRegistration(t *testing.T) {
	reg := &Registration{root: fspath.New("/watched")}
	other := &Registration{root: fspath.New("/other")}
	n := NewNotification(fspath.New("/watched/a"), fspath.Path{}, reg, Created, filesystem.TypeNone)

	assert.True(t, n.Belongs(reg))
	assert.False(t, n.Belongs(other))
	assert.False(t, n.Belongs(nil))
	assert.Same(t, reg, n.Registration())
}

func TestNotificationExtractPath(t *testing.T) {
	reg := &Registration{}
	n := NewNotification(fspath.New("/watched/a"), fspath.New("/watched/b"), reg, Renamed, filesystem.TypeRegular)

	p := n.ExtractPath()
	assert.Equal(t, "/watched/a", p.String())
	assert.True(t, n.Path.Empty())
	assert.True(t, n.RenamedTo.Empty())
	assert.Equal(t, None, n.Event)
	assert.False(t, n.TypeKnown())
	assert.False(t, n.Belongs(reg))
}

func TestNotificationTypeKnown(t *testing.T) {
	n := NewNotification(fspath.New("a"), fspath.Path{}, nil, Created, filesystem.TypeNone)
	assert.False(t, n.TypeKnown())

	n.Type = filesystem.TypeUnknown
	assert.False(t, n.TypeKnown())

	n.Type = filesystem.TypeDirectory
	assert.True(t, n.TypeKnown())
}

func TestNotificationPredicates(t *testing.T) {
	tests := []struct {
		name   string
		event  ChangeEvent
		check  func(Notification) bool
		others []func(Notification) bool
	}{
		{"created", Created, Notification.Created, []func(Notification) bool{Notification.Removed, Notification.Modified}},
		{"removed", Removed, Notification.Removed, []func(Notification) bool{Notification.Created, Notification.Renamed}},
		{"renamed", Renamed, Notification.Renamed, []func(Notification) bool{Notification.Removed}},
		{"content", ContentModified, Notification.ContentModified, []func(Notification) bool{Notification.MetadataModified}},
		{"metadata", MetadataModified, Notification.MetadataModified, []func(Notification) bool{Notification.ContentModified}},
		{"rescan", RescanRequired, Notification.Rescan, []func(Notification) bool{Notification.Created}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotification(fspath.New("a"), fspath.Path{}, nil, tt.event, filesystem.TypeRegular)
			assert.True(t, tt.check(n))
			for _, other := range tt.others {
				assert.False(t, other(n))
			}
		})
	}
}

func TestModifiedCoversContentAndMetadata(t *testing.T) {
	content := Notification{Event: ContentModified}
	meta := Notification{Event: MetadataModified}
	assert.True(t, content.Modified())
	assert.True(t, meta.Modified())
	assert.False(t, Notification{Event: Created}.Modified())
}

func TestRescanImpliesCanceled(t *testing.T) {
	assert.True(t, Notification{Event: RescanRequired}.Canceled())
	assert.False(t, Notification{Event: Removed}.Canceled())
}

func TestChangeEventString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "content_modified|metadata_modified", Modified.String())

	text, err := (Created | Removed).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "created|removed", string(text))
}
