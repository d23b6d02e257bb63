package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/soypat/brickrail"
)

// loadTuning reads calibration values from the TOML file at path on top of
// the defaults, so a file only needs the keys it changes. An empty path
// returns the defaults.
func loadTuning(path string) (brickrail.Tuning, error) {
	t := brickrail.DefaultTuning()
	if path == "" {
		return t, nil
	}
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return brickrail.Tuning{}, fmt.Errorf("tuning file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return brickrail.Tuning{}, fmt.Errorf("tuning file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return brickrail.Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}
