package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewer_Open(t *testing.T) {
	var opened []string
	origOpen := openFileFunc
	openFileFunc = func(path string) error {
		opened = append(opened, path)
		if path == "broken.pdf" {
			return errors.New("no viewer")
		}
		return nil
	}
	t.Cleanup(func() { openFileFunc = origOpen })

	t.Run("disabled", func(t *testing.T) {
		opened = nil
		assert.NoError(t, New(false).Open("slip.pdf"))
		assert.Empty(t, opened)
	})

	t.Run("enabled", func(t *testing.T) {
		opened = nil
		assert.NoError(t, New(true).Open("slip.pdf"))
		assert.Equal(t, []string{"slip.pdf"}, opened)
	})

	t.Run("failure", func(t *testing.T) {
		err := New(true).Open("broken.pdf")
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "no viewer")
		}
	})
}
