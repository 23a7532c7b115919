package config

import yaml "gopkg.in/yaml.v3"

//go:generate go tool go-enum --marshal

// Specification of how an existing destination is preserved before overwrite.
// ENUM(none, copy, move)
type BackupMode int

// UnmarshalYAML accepts both the textual ("copy") and the numeric form of
// the enum. The yaml decoder does not consult TextUnmarshaler on its own.
func (x *BackupMode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err == nil {
		return x.UnmarshalText([]byte(name))
	}
	var num int
	if err := value.Decode(&num); err != nil {
		return err
	}
	*x = BackupMode(num)
	if !x.IsValid() {
		return ErrInvalidBackupMode
	}
	return nil
}
