package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/makerbooks/makerbooks/internal/model"
)

// LoadedState is a state file after parsing: the typed state the engine
// consumes plus the raw document the schema validator checks. Validating
// the raw document rather than the typed struct means unknown fields and
// type mismatches are caught instead of silently dropped.
type LoadedState struct {
	Path  string
	State model.CalculatorState
	Raw   map[string]any
}

// LoadState reads a CalculatorState from a JSON or YAML file, chosen by
// extension (.json, .yaml, .yml).
func LoadState(path string) (*LoadedState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read state file", err)
	}

	loaded := &LoadedState{Path: path}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &loaded.State); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("parse %s", path), err)
		}
		if err := json.Unmarshal(data, &loaded.Raw); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("parse %s", path), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded.State); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("parse %s", path), err)
		}
		if err := yaml.Unmarshal(data, &loaded.Raw); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("parse %s", path), err)
		}
	default:
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("unsupported state file extension %q (want .json, .yaml, or .yml)", ext))
	}

	slog.Debug("state file loaded",
		"path", path,
		"products", len(loaded.State.Products),
		"workers", len(loaded.State.Workers),
	)
	return loaded, nil
}
