// Package fspath provides the Path value type used throughout portfs.
//
// Path is a thin wrapper over the native string. Every method is a pure
// string transform: nothing here touches the filesystem or can fail.
// POSIX and Windows lexical rules both live in this package; the build
// platform's rules are selected at compile time.
//
//	p := fspath.New("/var/log").Join("app", "current.log")
//	p.ParentPath()  // /var/log/app
//	p.Filename()    // current.log
//	p.Extension()   // .log
package fspath
