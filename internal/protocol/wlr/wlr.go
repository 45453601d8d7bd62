// Package wlr holds the client bindings for the wlroots layer-shell and
// foreign-toplevel-management protocols.
package wlr

//go:generate go run deedles.dev/wl/cmd/wlgen -client -xml wlr-layer-shell-unstable-v1.xml -out layershell.go
//go:generate go run deedles.dev/wl/cmd/wlgen -client -xml wlr-foreign-toplevel-management-unstable-v1.xml -out foreigntoplevel.go
