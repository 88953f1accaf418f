package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"bridgeswap/pkg/errors"
)

// Export writes the settings as indented JSON. The file is written to
// a temp sibling and renamed into place under an advisory lock, so a
// concurrent import never reads a half-written file.
func Export(s Settings, path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return errors.Wrap(errors.KindImportFormat, "failed to lock settings file", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Import reads a settings file and merges it onto base. Unknown keys
// in the file are ignored and missing keys keep their base values.
func Import(base Settings, path string) (Settings, error) {
	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return base, errors.Wrap(errors.KindImportFormat, "failed to lock settings file", err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, errors.Newf(errors.KindNotFound, "settings file %s not found", filepath.Base(path))
		}
		return base, err
	}
	return Merge(base, data)
}
