package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	cfg "github.com/automoto/caged/config"
	"github.com/quasilyte/gdata"
)

const keyBindingsItem = "keybindings"

// BindingStore is the part of *gdata.Manager the key bindings use.
type BindingStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// InitPersistence opens the on-disk store for the game's saved data.
func InitPersistence() (BindingStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: "caged",
	})
	if err != nil {
		return nil, fmt.Errorf("open persistence: %w", err)
	}
	return m, nil
}

// LoadKeyBindings applies saved primary inputs over bindings. Unknown actions
// or inputs are logged and skipped.
func LoadKeyBindings(store BindingStore, bindings map[cfg.ActionID]cfg.InputBinding) error {
	if store == nil {
		return nil
	}

	data, err := store.LoadItem(keyBindingsItem)
	if err != nil {
		return fmt.Errorf("load key bindings: %w", err)
	}
	if len(data) == 0 {
		// No saved bindings yet, use defaults
		return nil
	}

	var saved map[string]string
	if err := json.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("parse key bindings: %w", err)
	}

	for actionName, inputName := range saved {
		action, ok := cfg.ActionByName(actionName)
		if !ok {
			log.Printf("Warning: Ignoring saved binding for unknown action %q", actionName)
			continue
		}
		code, ok := cfg.ParseInputCode(inputName)
		if !ok {
			log.Printf("Warning: Ignoring saved binding %q for %s", inputName, actionName)
			continue
		}
		binding := bindings[action]
		binding.Primary = code
		bindings[action] = binding
	}
	return nil
}

// SaveKeyBindings writes the primary input of every action.
func SaveKeyBindings(store BindingStore, bindings map[cfg.ActionID]cfg.InputBinding) error {
	if store == nil {
		return nil
	}

	saved := make(map[string]string, len(bindings))
	for action, binding := range bindings {
		name, ok := cfg.ActionNames[action]
		if !ok {
			continue
		}
		saved[name] = binding.Primary.String()
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize key bindings: %w", err)
	}
	if err := store.SaveItem(keyBindingsItem, data); err != nil {
		return fmt.Errorf("save key bindings: %w", err)
	}
	return nil
}

// RebindAction sets the primary input of an action and persists the result.
func RebindAction(store BindingStore, bindings map[cfg.ActionID]cfg.InputBinding, actionName, inputName string) error {
	action, ok := cfg.ActionByName(actionName)
	if !ok {
		return fmt.Errorf("unknown action %q (want one of %v)", actionName, actionNameList())
	}
	code, ok := cfg.ParseInputCode(inputName)
	if !ok {
		return fmt.Errorf("unknown input %q", inputName)
	}

	binding := bindings[action]
	binding.Primary = code
	bindings[action] = binding

	return SaveKeyBindings(store, bindings)
}

func actionNameList() []string {
	names := make([]string, 0, len(cfg.ActionNames))
	for _, n := range cfg.ActionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
