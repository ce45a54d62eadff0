//go:build windows

package fspath

var native = windowsStyle
