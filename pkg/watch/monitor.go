package watch

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/fspath"
	"github.com/arthur-debert/portfs/pkg/logging"
)

// Options configures a registration.
type Options struct {
	// Recursive also watches every directory below the root, including
	// directories created later.
	Recursive bool
	// Events filters the notifications delivered; zero means AllEvents.
	Events ChangeEvent
}

// Registration is a watched root.
type Registration struct {
	root fspath.Path
	opts Options
}

func (r *Registration) Root() fspath.Path { return r.root }

func (r *Registration) wants(ev ChangeEvent) bool {
	mask := r.opts.Events
	if mask == None {
		mask = AllEvents
	}
	return mask&ev != 0
}

// Monitor delivers notifications for its registrations on one channel.
// Start runs the delivery goroutine until the context ends or Close is
// called.
type Monitor struct {
	fsys *filesystem.FileSystem
	w    *fsnotify.Watcher
	log  zerolog.Logger

	mu      sync.Mutex
	watched map[string]*Registration

	out  chan Notification
	errs chan error
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewMonitor creates a monitor that queries file types through fsys.
func NewMonitor(fsys *filesystem.FileSystem) (*Monitor, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.FromNative(err, "cannot create watcher")
	}
	return &Monitor{
		fsys:    fsys,
		w:       w,
		log:     logging.GetLogger("watch"),
		watched: make(map[string]*Registration),
		out:     make(chan Notification, 64),
		errs:    make(chan error, 8),
		done:    make(chan struct{}),
	}, nil
}

// Notifications is closed when the monitor stops.
func (m *Monitor) Notifications() <-chan Notification { return m.out }

// Errors carries backend failures other than overflows, which become
// RescanRequired notifications.
func (m *Monitor) Errors() <-chan error { return m.errs }

// Watch registers root.
func (m *Monitor) Watch(root fspath.Path, opts Options) (*Registration, error) {
	st, err := m.fsys.Status(root)
	if err != nil {
		return nil, err
	}
	if !st.Exists() {
		return nil, errors.New(errors.ErrNotFound, "cannot watch a missing path").WithPaths(root.String())
	}
	reg := &Registration{root: root, opts: opts}
	if err := m.add(root, reg); err != nil {
		return nil, err
	}
	if opts.Recursive && st.IsDirectory() {
		if err := m.addTree(root, reg); err != nil {
			_ = m.Unwatch(reg)
			return nil, err
		}
	}
	m.log.Debug().Str("root", root.String()).Bool("recursive", opts.Recursive).Msg("watching")
	return reg, nil
}

func (m *Monitor) add(p fspath.Path, reg *Registration) error {
	if err := m.w.Add(p.Native()); err != nil {
		return errors.FromNative(err, "cannot watch", p.String())
	}
	m.mu.Lock()
	m.watched[p.Native()] = reg
	m.mu.Unlock()
	return nil
}

// addTree watches every directory below root.
func (m *Monitor) addTree(root fspath.Path, reg *Registration) error {
	it, err := m.fsys.NewRecursiveDirectoryIterator(root, filesystem.SkipPermissionDenied)
	if err != nil {
		return err
	}
	for entry, err := range it.All() {
		if err != nil {
			return err
		}
		st, err := entry.SymlinkStatus()
		if err != nil || !st.IsDirectory() {
			continue
		}
		if err := m.add(entry.Path(), reg); err != nil {
			return err
		}
	}
	return nil
}

// Unwatch drops every watch belonging to reg.
func (m *Monitor) Unwatch(reg *Registration) error {
	m.mu.Lock()
	var paths []string
	for p, r := range m.watched {
		if r == reg {
			paths = append(paths, p)
			delete(m.watched, p)
		}
	}
	m.mu.Unlock()

	var first error
	for _, p := range paths {
		if err := m.w.Remove(p); err != nil && first == nil && !stderrors.Is(err, fsnotify.ErrNonExistentWatch) {
			first = errors.FromNative(err, "cannot stop watching", p)
		}
	}
	return first
}

func (m *Monitor) registrationFor(name string) *Registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if reg, ok := m.watched[name]; ok {
		return reg
	}
	return m.watched[filepath.Dir(name)]
}

func (m *Monitor) registrations() []*Registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[*Registration]bool)
	var regs []*Registration
	for _, r := range m.watched {
		if !seen[r] {
			seen[r] = true
			regs = append(regs, r)
		}
	}
	return regs
}

// Start launches the delivery goroutine.
func (m *Monitor) Start(ctx context.Context) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer close(m.out)
		m.run(ctx)
	}()
}

func (m *Monitor) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case ev, ok := <-m.w.Events:
			if !ok {
				return
			}
			for _, n := range m.translate(ev) {
				if !m.deliver(ctx, n) {
					return
				}
			}
		case err, ok := <-m.w.Errors:
			if !ok {
				return
			}
			notes := m.translateError(err)
			if notes == nil {
				select {
				case m.errs <- errors.FromNative(err, "watch failed"):
				default:
					m.log.Warn().Err(err).Msg("dropping watch error")
				}
				continue
			}
			for _, n := range notes {
				if !m.deliver(ctx, n) {
					return
				}
			}
		}
	}
}

func (m *Monitor) deliver(ctx context.Context, n Notification) bool {
	select {
	case m.out <- n:
		return true
	case <-ctx.Done():
		return false
	case <-m.done:
		return false
	}
}

// translate maps one fsnotify event to notifications. fsnotify reports a
// rename on the old name and a create on the new one, so RenamedTo stays
// empty.
func (m *Monitor) translate(ev fsnotify.Event) []Notification {
	reg := m.registrationFor(ev.Name)
	if reg == nil {
		return nil
	}
	p := fspath.New(ev.Name)
	typ := filesystem.TypeNone
	if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Chmod) {
		if st, err := m.fsys.SymlinkStatus(p); err == nil && st.Exists() {
			typ = st.Type()
		}
	}

	var out []Notification
	emit := func(e ChangeEvent) {
		if reg.wants(e) {
			out = append(out, NewNotification(p, fspath.Path{}, reg, e, typ))
		}
	}
	if ev.Has(fsnotify.Create) {
		if typ == filesystem.TypeDirectory && reg.opts.Recursive {
			if err := m.addTree(p, reg); err == nil {
				_ = m.add(p, reg)
			} else {
				m.log.Debug().Err(err).Str("path", p.String()).Msg("cannot watch new directory")
			}
		}
		emit(Created)
	}
	if ev.Has(fsnotify.Remove) {
		m.forget(ev.Name)
		emit(Removed)
	}
	if ev.Has(fsnotify.Rename) {
		m.forget(ev.Name)
		emit(Renamed)
	}
	if ev.Has(fsnotify.Write) {
		emit(ContentModified)
	}
	if ev.Has(fsnotify.Chmod) {
		emit(MetadataModified)
	}
	return out
}

// forget drops a watched directory that disappeared, keeping roots.
func (m *Monitor) forget(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if reg, ok := m.watched[name]; ok && reg.root.Native() != name {
		delete(m.watched, name)
	}
}

// translateError turns a queue overflow into one RescanRequired per
// registration. Other errors yield nil.
func (m *Monitor) translateError(err error) []Notification {
	if !stderrors.Is(err, fsnotify.ErrEventOverflow) {
		return nil
	}
	m.log.Warn().Err(err).Msg("event queue overflowed, rescan required")
	var out []Notification
	for _, reg := range m.registrations() {
		out = append(out, NewNotification(reg.root, fspath.Path{}, reg, RescanRequired, filesystem.TypeNone))
	}
	return out
}

// Close stops the watcher and waits for the delivery goroutine, which
// abandons any notification the consumer has not read.
func (m *Monitor) Close() error {
	var err error
	m.once.Do(func() {
		close(m.done)
		err = m.w.Close()
		m.wg.Wait()
	})
	if err != nil {
		return errors.FromNative(err, "cannot close watcher")
	}
	return nil
}
