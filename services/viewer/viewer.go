// Package viewer opens generated files with the platform's default application.
package viewer

import (
	"github.com/pkg/browser"
	"github.com/pkg/errors"
)

// mockable for tests
var openFileFunc = browser.OpenFile

type Viewer struct {
	enabled bool
}

func New(enabled bool) *Viewer {
	return &Viewer{enabled: enabled}
}

// Open launches the default viewer for path. It is a no-op when the viewer is disabled.
func (v *Viewer) Open(path string) error {
	if v == nil || !v.enabled {
		return nil
	}
	if err := openFileFunc(path); err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	return nil
}
