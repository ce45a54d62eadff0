package filesystem

import (
	"io"
	"iter"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/fspath"
)

// DirectoryOptions tunes iteration.
type DirectoryOptions uint8

const (
	DirectoryOptionsNone DirectoryOptions = 0
	// SkipPermissionDenied skips directories that cannot be opened instead
	// of failing.
	SkipPermissionDenied DirectoryOptions = 1
	// FollowDirectorySymlink descends into symlinks to directories. Only
	// recursive iterators descend.
	FollowDirectorySymlink DirectoryOptions = 2
	// SkipDotAndDotDot omits the "." and ".." entries a flat iterator
	// otherwise yields first.
	SkipDotAndDotDot DirectoryOptions = 4
)

type frame struct {
	dir  fspath.Path
	d    *ownedDir
	dots []string
}

// DirectoryIterator is a one pass cursor over the entries of a directory,
// optionally descending depth first into subdirectories. Sibling order is
// whatever the OS returns. Open directory handles are released when the end
// is reached, on error, or on Close.
//
//	it, err := fsys.NewRecursiveDirectoryIterator(root, 0)
//	if err != nil { ... }
//	defer it.Close()
//	for it.Next() {
//		fmt.Println(it.Entry().Path())
//	}
//	if err := it.Err(); err != nil { ... }
type DirectoryIterator struct {
	fsys      *FileSystem
	opts      DirectoryOptions
	recursive bool

	stack   []*frame
	entry   DirectoryEntry
	descend bool
	err     error
}

// NewDirectoryIterator lists the direct children of p.
func (fsys *FileSystem) NewDirectoryIterator(p fspath.Path, opts DirectoryOptions) (*DirectoryIterator, error) {
	return fsys.newIterator(p, opts, false)
}

// NewRecursiveDirectoryIterator lists p and all of its subdirectories, pre
// order. The dot entries are never yielded.
func (fsys *FileSystem) NewRecursiveDirectoryIterator(p fspath.Path, opts DirectoryOptions) (*DirectoryIterator, error) {
	return fsys.newIterator(p, opts, true)
}

func (fsys *FileSystem) newIterator(p fspath.Path, opts DirectoryOptions, recursive bool) (*DirectoryIterator, error) {
	it := &DirectoryIterator{fsys: fsys, opts: opts, recursive: recursive}
	f, err := it.open(p)
	if err != nil {
		if it.skippable(err) {
			return it, nil
		}
		return nil, err
	}
	if !recursive && opts&SkipDotAndDotDot == 0 {
		f.dots = []string{".", ".."}
	}
	it.stack = append(it.stack, f)
	return it, nil
}

func (it *DirectoryIterator) open(p fspath.Path) (*frame, error) {
	h, err := it.fsys.backend.OpenDir(p.Native())
	if err != nil {
		return nil, errors.FromNative(err, "cannot open directory", p.String())
	}
	return &frame{dir: p, d: &ownedDir{h: h}}, nil
}

func (it *DirectoryIterator) skippable(err error) bool {
	return it.opts&SkipPermissionDenied != 0 && errors.IsErrorCode(err, errors.ErrPermission)
}

// Next advances to the next entry. It returns false at the end or on error;
// check Err to tell them apart.
func (it *DirectoryIterator) Next() bool {
	if it.err != nil || len(it.stack) == 0 {
		return false
	}
	if it.descend {
		it.descend = false
		if !it.push(it.entry.Path()) {
			return false
		}
	}
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if len(top.dots) > 0 {
			name := top.dots[0]
			top.dots = top.dots[1:]
			it.entry = it.fsys.Entry(top.dir.Join(name))
			return true
		}
		name, typ, err := top.d.next()
		if err == io.EOF {
			it.popFrame()
			continue
		}
		if err != nil {
			it.fail(errors.FromNative(err, "cannot read directory", top.dir.String()))
			return false
		}
		it.entry = it.fsys.Entry(top.dir.Join(name))
		if it.recursive {
			it.descend = it.shouldDescend(typ)
		}
		return true
	}
	return false
}

func (it *DirectoryIterator) push(p fspath.Path) bool {
	f, err := it.open(p)
	if err != nil {
		if it.skippable(err) {
			logger().Debug().Str("path", p.String()).Msg("skipping unreadable directory")
			return true
		}
		it.fail(err)
		return false
	}
	it.stack = append(it.stack, f)
	return true
}

func (it *DirectoryIterator) shouldDescend(typ FileType) bool {
	switch typ {
	case TypeDirectory:
		return true
	case TypeSymlink:
		if it.opts&FollowDirectorySymlink == 0 {
			return false
		}
		st, err := it.entry.Status()
		if err != nil || !st.IsDirectory() {
			return false
		}
		return !it.loops(it.entry.Path())
	case TypeNone, TypeUnknown:
		st, err := it.entry.SymlinkStatus()
		return err == nil && st.IsDirectory()
	default:
		return false
	}
}

// loops reports whether p resolves to a directory already being walked.
func (it *DirectoryIterator) loops(p fspath.Path) bool {
	for _, f := range it.stack {
		same, err := it.fsys.backend.SameFile(p.Native(), f.dir.Native())
		if err == nil && same {
			logger().Debug().Str("path", p.String()).Str("ancestor", f.dir.String()).Msg("symlink loop, not descending")
			return true
		}
	}
	return false
}

func (it *DirectoryIterator) popFrame() {
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if err := top.d.close(); err != nil {
		logger().Debug().Err(err).Str("path", top.dir.String()).Msg("closing directory failed")
	}
}

func (it *DirectoryIterator) fail(err error) {
	it.err = err
	_ = it.Close()
}

// Entry returns the current entry. It is overwritten by the next call to
// Next.
func (it *DirectoryIterator) Entry() *DirectoryEntry {
	return &it.entry
}

// Err returns the error that stopped iteration, if any.
func (it *DirectoryIterator) Err() error {
	return it.err
}

// Depth is the nesting level of the current entry, 0 for direct children.
func (it *DirectoryIterator) Depth() int {
	if len(it.stack) == 0 {
		return 0
	}
	return len(it.stack) - 1
}

// Options returns the options the iterator was created with.
func (it *DirectoryIterator) Options() DirectoryOptions {
	return it.opts
}

// RecursionPending reports whether Next will descend into the current entry.
func (it *DirectoryIterator) RecursionPending() bool {
	return it.descend
}

// DisableRecursionPending stops Next from descending into the current entry.
func (it *DirectoryIterator) DisableRecursionPending() {
	it.descend = false
}

// Pop abandons the directory being listed; Next continues in its parent.
// Popping the top level ends the iteration.
func (it *DirectoryIterator) Pop() error {
	if !it.recursive {
		return errors.New(errors.ErrNotSupported, "pop requires a recursive iterator")
	}
	if len(it.stack) == 0 {
		return nil
	}
	it.descend = false
	it.popFrame()
	return nil
}

// Close releases every open directory handle. It is safe to call more than
// once.
func (it *DirectoryIterator) Close() error {
	var first error
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if err := top.d.close(); err != nil && first == nil {
			first = err
		}
	}
	it.descend = false
	return first
}

// Done reports whether the iterator is past the end.
func (it *DirectoryIterator) Done() bool {
	return it == nil || len(it.stack) == 0
}

// Equal reports whether two iterators are the same cursor. All iterators
// past the end are equal.
func (it *DirectoryIterator) Equal(o *DirectoryIterator) bool {
	if it.Done() && o.Done() {
		return true
	}
	return it == o
}

// All adapts the iterator to a range loop. A failure is yielded once with a
// zero entry; the iterator is closed when the loop ends.
func (it *DirectoryIterator) All() iter.Seq2[DirectoryEntry, error] {
	return func(yield func(DirectoryEntry, error) bool) {
		defer it.Close()
		for it.Next() {
			if !yield(it.entry, nil) {
				return
			}
		}
		if it.err != nil {
			yield(DirectoryEntry{}, it.err)
		}
	}
}
