// Package theme persists the storefront's theme preference between runs.
// It is the only client state that survives a restart.
package theme

import (
	"encoding/json"
	"os"
)

const (
	Light = "light"
	Dark  = "dark"
)

const prefsFile = "prefs.json"

// Prefs holds the persisted client preferences.
type Prefs struct {
	Theme string `json:"theme"`
}

// Load reads the preferences file from the working directory. A missing
// file yields the light theme; a malformed one is an error.
func Load() (Prefs, error) {
	f, err := os.Open(prefsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{Theme: Light}, nil
		}
		return Prefs{}, err
	}
	defer f.Close()

	var p Prefs
	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return Prefs{}, err
	}
	if p.Theme != Dark {
		p.Theme = Light
	}
	return p, nil
}

// Save writes the preferences file.
func (p Prefs) Save() error {
	f, err := os.Create(prefsFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(p)
}

// Toggle flips between dark and light.
func (p *Prefs) Toggle() {
	if p.Theme == Dark {
		p.Theme = Light
	} else {
		p.Theme = Dark
	}
}

// IsDark reports whether the dark theme is active.
func (p Prefs) IsDark() bool {
	return p.Theme == Dark
}
