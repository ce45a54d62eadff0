package filesystem

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/portfs/pkg/errors"
)

// Perms is a POSIX style permission bitset. Queried statuses carry only data
// bits or PermsUnknown; the modifier bits are accepted by Permissions alone.
type Perms uint32

const (
	PermsNone Perms = 0

	OwnerRead  Perms = 0400
	OwnerWrite Perms = 0200
	OwnerExec  Perms = 0100
	OwnerAll   Perms = 0700

	GroupRead  Perms = 040
	GroupWrite Perms = 020
	GroupExec  Perms = 010
	GroupAll   Perms = 070

	OthersRead  Perms = 04
	OthersWrite Perms = 02
	OthersExec  Perms = 01
	OthersAll   Perms = 07

	PermsAll  Perms = 0777
	SetUID    Perms = 04000
	SetGID    Perms = 02000
	StickyBit Perms = 01000

	// PermsMask covers every data bit.
	PermsMask Perms = 07777
	// PermsUnknown is reported when the platform cannot supply POSIX bits.
	PermsUnknown Perms = 0xFFFF

	// AddPerms ors the given bits into the current permissions.
	AddPerms Perms = 0x10000
	// RemovePerms clears the given bits from the current permissions.
	RemovePerms Perms = 0x20000
	// ResolveSymlinks applies the change to a symlink's target.
	ResolveSymlinks Perms = 0x40000
)

// Has reports whether every bit of q is set.
func (p Perms) Has(q Perms) bool { return p&q == q }

// Any reports whether at least one bit of q is set.
func (p Perms) Any(q Perms) bool { return p&q != 0 }

func (p Perms) With(q Perms) Perms { return p | q }

func (p Perms) Without(q Perms) Perms { return p &^ q }

// Known reports whether p holds real permission bits.
func (p Perms) Known() bool { return p != PermsUnknown }

// Bits strips the modifiers.
func (p Perms) Bits() Perms { return p & PermsMask }

// FileMode converts the data bits to an fs.FileMode.
func (p Perms) FileMode() fs.FileMode {
	m := fs.FileMode(p & PermsAll)
	if p.Has(SetUID) {
		m |= fs.ModeSetuid
	}
	if p.Has(SetGID) {
		m |= fs.ModeSetgid
	}
	if p.Has(StickyBit) {
		m |= fs.ModeSticky
	}
	return m
}

// PermsFromFileMode extracts the permission bits of m.
func PermsFromFileMode(m fs.FileMode) Perms {
	p := Perms(m.Perm())
	if m&fs.ModeSetuid != 0 {
		p |= SetUID
	}
	if m&fs.ModeSetgid != 0 {
		p |= SetGID
	}
	if m&fs.ModeSticky != 0 {
		p |= StickyBit
	}
	return p
}

// String renders the bits ls style, e.g. "rwsr-xr-t".
func (p Perms) String() string {
	if !p.Known() {
		return "unknown"
	}
	const rwx = "rwxrwxrwx"
	var b strings.Builder
	for i := 0; i < 9; i++ {
		bit := Perms(1) << (8 - i)
		c := byte('-')
		if p&bit != 0 {
			c = rwx[i]
		}
		switch {
		case i == 2 && p.Has(SetUID), i == 5 && p.Has(SetGID):
			c = special(c, 's')
		case i == 8 && p.Has(StickyBit):
			c = special(c, 't')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func special(c, mark byte) byte {
	if c == '-' {
		return mark - 'a' + 'A'
	}
	return mark
}

// apply computes the permissions that result from requesting p on a file
// currently holding cur.
func (p Perms) apply(cur Perms) (Perms, error) {
	add, remove := p.Has(AddPerms), p.Has(RemovePerms)
	bits := p.Bits()
	switch {
	case add && remove:
		return PermsUnknown, errors.New(errors.ErrInvalidInput, "add and remove permissions are mutually exclusive")
	case add:
		return cur.Bits() | bits, nil
	case remove:
		return cur.Bits() &^ bits, nil
	default:
		return bits, nil
	}
}
