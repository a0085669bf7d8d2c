// Package wlfile reads and writes wldat documents on the local file system.
//
// The wldat codec works on in-memory text only; this package owns the file
// handles. It opens the named file, hands the whole contents to the codec,
// and closes the file on every path. Writes encode the document first, so a
// shape/buffer mismatch never leaves a partial file behind, and then go
// through a temporary file that is renamed into place.
//
// Files ending in .gz or .zst (or starting with the gzip or zstd magic
// bytes) are compressed transparently.
package wlfile
