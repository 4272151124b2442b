// Package safety validates layout paths and confines filesystem writes to the
// target root. Every path taken from a layout file passes through here before
// it is joined to the destination, so a crafted layout cannot escape the root.
package safety
