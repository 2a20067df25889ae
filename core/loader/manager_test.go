package loader_test

import (
	"errors"
	"testing"

	"mamoji/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestLoadAllSkipsDisabledFeatures(t *testing.T) {
	mgr := loader.NewManager()
	enabled := &fakeFeature{name: "a", enabled: true}
	disabled := &fakeFeature{name: "b", enabled: false}
	mgr.Register(enabled)
	mgr.Register(disabled)

	err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestLoadAllFailsFast(t *testing.T) {
	mgr := loader.NewManager()
	failing := &fakeFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}
	after := &fakeFeature{name: "after", enabled: true}
	mgr.Register(failing)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded)
}
