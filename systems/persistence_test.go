package systems

import (
	"errors"
	"testing"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func withStore(t *testing.T, s settingsStore) {
	t.Helper()
	prevStore, prevSettings := store, currentSettings
	store = s
	t.Cleanup(func() {
		store = prevStore
		currentSettings = prevSettings
	})
}

func TestSaveCurrentSettingsPersists(t *testing.T) {
	mem := &memStore{}
	withStore(t, mem)

	SaveCurrentSettings(&components.SettingsMenuData{Fullscreen: true, ResolutionIndex: 2})

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got == nil || !got.Fullscreen || got.ResolutionIndex != 2 {
		t.Fatalf("LoadSettings() = %+v, want fullscreen at index 2", got)
	}
	if currentSettings != *got {
		t.Fatalf("currentSettings = %+v, want %+v", currentSettings, *got)
	}
}

func TestLoadSettingsFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		store     settingsStore
		wantNil   bool
		wantErr   bool
		wantIndex int
	}{
		{"no store", nil, true, false, 0},
		{"nothing saved", &memStore{}, true, false, 0},
		{"read failure", &memStore{loadErr: errors.New("disk gone")}, true, false, 0},
		{"corrupt data", &memStore{items: map[string][]byte{settingsKey: []byte("{")}}, true, true, 0},
		{"out of range resolution", &memStore{items: map[string][]byte{settingsKey: []byte(`{"resolutionIndex":99}`)}}, false, false, cfg.SettingsMenu.DefaultResolutionIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStore(t, tt.store)

			got, err := LoadSettings()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if (got == nil) != tt.wantNil {
				t.Fatalf("settings = %+v, wantNil %v", got, tt.wantNil)
			}
			if got != nil && got.ResolutionIndex != tt.wantIndex {
				t.Fatalf("resolution index = %d, want %d", got.ResolutionIndex, tt.wantIndex)
			}
		})
	}
}
