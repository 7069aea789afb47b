package command

import (
	"sort"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Command)
)

// Register adds a command to the global registry. Commands register
// themselves from init() in their group packages; main blank-imports the
// groups it ships with.
func Register(cmd Command) {
	mu.Lock()
	defer mu.Unlock()
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	mu.RLock()
	defer mu.RUnlock()
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns every registered command, sorted by name for stable output.
func All() []Command {
	mu.RLock()
	defer mu.RUnlock()
	cmds := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}
