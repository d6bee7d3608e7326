// Package user persists the author profile recorded on history snapshots.
package user

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/calliglyph/calliglyph/internal/config"
)

// Profile holds persisted author metadata.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// String formats the profile for display, omitting the email brackets when
// no email is stored.
func (p Profile) String() string {
	if p.Email == "" {
		return p.Name
	}
	return fmt.Sprintf("%s <%s>", p.Name, p.Email)
}

func profilePath() (string, error) {
	d, err := config.EnsureDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "whoami.json"), nil
}

// SetProfile saves the author profile to disk. The write goes through a
// temp file and rename so a crash cannot leave a half-written profile.
func SetProfile(p Profile) error {
	pfile, err := profilePath()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	tmp := pfile + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, pfile); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store profile: %w", err)
	}
	return nil
}

// GetProfile reads the author profile. Returns (Profile, true, nil) if found.
func GetProfile() (Profile, bool, error) {
	pfile, err := profilePath()
	if err != nil {
		return Profile{}, false, err
	}
	b, err := os.ReadFile(pfile)
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, false, nil
		}
		return Profile{}, false, err
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return Profile{}, false, fmt.Errorf("decode profile: %w", err)
	}
	return p, true, nil
}

// ClearProfile removes the persisted profile.
func ClearProfile() error {
	pfile, err := profilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(pfile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ResolveName returns the author name recorded on snapshots: the stored
// profile name when one is set, otherwise the OS user environment.
func ResolveName() string {
	if p, ok, err := GetProfile(); err == nil && ok && p.Name != "" {
		return p.Name
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
