// Package wp holds the client binding for the cursor-shape protocol.
package wp

//go:generate go run deedles.dev/wl/cmd/wlgen -client -xml cursor-shape-v1.xml -out cursorshape.go
