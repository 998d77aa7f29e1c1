package config

import (
	"errors"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dockit/internal/logging"
)

// reloadDebounce collapses the write/chmod/rename burst an editor produces
// on save into one reload.
const reloadDebounce = 100 * time.Millisecond

// Watch reloads the file when it changes and passes the new config to the
// OnConfigChange callbacks. A file that fails to parse or validate keeps the
// previous config and notifies no one.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.scheduleReload)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) scheduleReload(e fsnotify.Event) {
	logging.NewFromEnv().Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reloadTimer != nil {
		m.reloadTimer.Stop()
	}
	m.reloadTimer = time.AfterFunc(reloadDebounce, m.applyReload)
}

// applyReload re-reads the file and runs the callbacks outside the lock.
func (m *Manager) applyReload() {
	log := logging.NewFromEnv()

	m.mu.Lock()
	m.reloadTimer = nil
	if m.skipNextReload {
		// Save already holds the written config; only resync viper.
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper config after Save")
		}
	} else if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("keeping previous config")
		return
	}
	cfg := m.config
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(cfg)
	}
}

// OnConfigChange registers a callback run after each successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. Must be called with the write lock held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return errors.New("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
