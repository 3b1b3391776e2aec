package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treefocus/internal/eventbus"
)

func TestLoadOrDefaultMissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOrDefault(NewConfigService(), dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(dir), cfg)
	assert.Equal(t, 6, cfg.MaxDepth)
	assert.True(t, cfg.UISettings.ShowHelp)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	svc := NewConfigService()

	cfg := DefaultConfig(dir)
	cfg.ShowHidden = true
	cfg.MaxDepth = 2
	cfg.Expanded = []string{filepath.Join(dir, "src")}
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `
root = "sub"
max_depth = -3

[ui]
show_help = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub"), cfg.Root)
	assert.Equal(t, 0, cfg.MaxDepth)
	assert.False(t, cfg.UISettings.ShowHelp)
	assert.True(t, cfg.UISettings.Preview)
	assert.Equal(t, DefaultIgnore, cfg.Ignore)
}

func TestLoadInvalidToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("version = ["), 0644))

	_, err := LoadOrDefault(NewConfigService(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestBusEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	saved := make(chan string, 1)
	loaded := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent).Path
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.ConfigLoadedEvent).Root
	})

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	svc := NewConfigServiceWithBus(bus)
	require.NoError(t, svc.SaveToPath(DefaultConfig(dir), path))
	_, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	select {
	case p := <-saved:
		assert.Equal(t, path, p)
	case <-time.After(time.Second):
		t.Fatal("ConfigSaved not published")
	}
	select {
	case r := <-loaded:
		assert.Equal(t, dir, r)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoaded not published")
	}
}
