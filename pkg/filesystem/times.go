package filesystem

import "time"

// UnsetTime marks a timestamp the backend could not supply. It is the zero
// time, which sorts before every real timestamp.
var UnsetTime = time.Time{}

// Times holds the timestamps of a file.
type Times struct {
	Modified         time.Time
	MetadataModified time.Time
	Accessed         time.Time
	Created          time.Time
}

func (t Times) HasModified() bool         { return !t.Modified.IsZero() }
func (t Times) HasMetadataModified() bool { return !t.MetadataModified.IsZero() }
func (t Times) HasAccessed() bool         { return !t.Accessed.IsZero() }
func (t Times) HasCreated() bool          { return !t.Created.IsZero() }
