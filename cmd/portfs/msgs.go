package portfs

// Short messages (one-liners)
const (
	MsgRootShort      = "Inspect and manipulate the filesystem portably"
	MsgRootLong       = "portfs queries file status, resolves canonical paths, lists directories,\nlocates standard directories and watches for changes the same way on every\nplatform it supports."
	MsgStatShort      = "Show the status of a path"
	MsgCanonicalShort = "Resolve a path to its canonical form"
	MsgLsShort        = "List a directory"
	MsgDirsShort      = "Show the home, temporary, cache and standard directories"
	MsgMkdirShort     = "Create a directory"
	MsgRmShort        = "Remove a file or an empty directory"
	MsgEquivShort     = "Report whether two paths name the same file"
	MsgMountShort     = "Show the mount point containing a path"
	MsgChmodShort     = "Change permissions"
	MsgChmodLong      = "MODE is octal. A leading + adds the bits to the current permissions and a\nleading - removes them. End the flags with -- before a removing MODE:\n\n  portfs chmod -- -022 file"
	MsgWatchShort     = "Print change notifications for a path until interrupted"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgWatching = "watching %s (ctrl-c to stop)"

	// Error messages
	MsgErrConfig    = "failed to load configuration: %w"
	MsgErrFormat    = "invalid output format: %w"
	MsgErrMode      = "invalid mode %q: expected octal digits with an optional + or - prefix"
	MsgErrDomain    = "unknown domain %q: expected user, local or shared"
	MsgErrEvents    = "unknown event %q"
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/portfs/config.toml)"
	MsgFlagFormat    = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagNoFollow  = "Do not follow a final symlink"
	MsgFlagBase      = "Resolve relative paths against this directory instead of the working directory"
	MsgFlagRecursive = "Recurse into subdirectories"
	MsgFlagDepth     = "Maximum recursion depth, -1 for unlimited"
	MsgFlagFollow    = "Follow symlinks to directories while recursing"
	MsgFlagAll       = "Include . and .. in flat listings"
	MsgFlagDomain    = "Directory domain: user, local or shared"
	MsgFlagCreate    = "Create standard directories that do not exist"
	MsgFlagParents   = "Create missing parent directories"
	MsgFlagMode      = "Permissions for the new directory, in octal"
	MsgFlagFrom      = "Copy permissions from this directory"
	MsgFlagEvents    = "Comma separated events to report (created,removed,renamed,modified,rescan)"
)
