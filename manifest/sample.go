package manifest

import (
	_ "embed"
)

// sampleManifest is the starter manifest written by 'hookman sample':
// formatting, security scanning, secret detection, and large-file/symlink
// checks, all pinned to released tags.
//
//go:embed sample.yaml
var sampleManifest []byte

// Sample returns the starter manifest document.
func Sample() []byte {
	out := make([]byte, len(sampleManifest))
	copy(out, sampleManifest)
	return out
}
