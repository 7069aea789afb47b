package discord

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"shadebot/internal/command"

	"github.com/bwmarrin/discordgo"
)

// registerCommands syncs slash commands with Discord for one guild, or
// globally when guildID is empty: obsolete remote commands are deleted,
// and only commands whose definition hash changed are re-created.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.cfg.AppID

	existing, err := b.dg.ApplicationCommands(appID, guildID)
	if err != nil {
		return fmt.Errorf("fetch remote commands: %w", err)
	}

	localHashes := loadCommandHashes(guildID)

	var wanted []*discordgo.ApplicationCommand
	wantedHashes := make(map[string]string)
	for _, cmd := range command.All() {
		if def := normalizeDefinition(cmd); def != nil {
			wanted = append(wanted, def)
			wantedHashes[def.Name] = hashCommand(def)
		}
	}

	for _, old := range existing {
		if _, ok := wantedHashes[old.Name]; !ok {
			log.Printf("[INFO] [%s] Deleting obsolete command: %s", cacheKey(guildID), old.Name)
			if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
				log.Printf("[ERR] [%s] Failed to delete %s: %v", cacheKey(guildID), old.Name, err)
			}
			delete(localHashes, old.Name)
		}
	}

	var changed []*discordgo.ApplicationCommand
	for _, def := range wanted {
		if localHashes[def.Name] != wantedHashes[def.Name] {
			changed = append(changed, def)
		}
	}

	if len(changed) > 0 {
		log.Printf("[INFO] [%s] %d command(s) changed, updating with rate limit...", cacheKey(guildID), len(changed))
		b.createCommandsWithRateLimit(appID, guildID, changed)
		for _, def := range changed {
			localHashes[def.Name] = wantedHashes[def.Name]
		}
	}

	saveCommandHashes(guildID, localHashes)
	return nil
}

// normalizeDefinition extracts the slash definition from a command,
// filling in the default command type.
func normalizeDefinition(cmd command.Command) *discordgo.ApplicationCommand {
	slash, ok := cmd.(command.SlashProvider)
	if !ok {
		return nil
	}
	def := slash.SlashDefinition()
	if def == nil {
		return nil
	}
	if def.Type == 0 {
		def.Type = discordgo.ChatApplicationCommand
	}
	return def
}

// createCommandsWithRateLimit creates commands while staying well under
// Discord's application command rate limit.
func (b *Bot) createCommandsWithRateLimit(appID, guildID string, defs []*discordgo.ApplicationCommand) {
	ticker := time.NewTicker(time.Second / 40)
	defer ticker.Stop()

	var wg sync.WaitGroup
	for _, job := range defs {
		wg.Add(1)
		go func(def *discordgo.ApplicationCommand) {
			defer wg.Done()
			<-ticker.C

			if _, err := b.dg.ApplicationCommandCreate(appID, guildID, def); err != nil {
				log.Printf("[ERR] Can't create command %s: %v", def.Name, err)
			} else {
				log.Printf("[DONE] Command created: %s", def.Name)
			}
		}(job)
	}
	wg.Wait()
}

// --- Command hash cache ---

func cacheKey(guildID string) string {
	if guildID == "" {
		return "global"
	}
	return guildID
}

func commandHashPath(guildID string) string {
	return filepath.Join("data", "commands", cacheKey(guildID)+".json")
}

func loadCommandHashes(guildID string) map[string]string {
	out := make(map[string]string)
	if data, err := os.ReadFile(commandHashPath(guildID)); err == nil {
		_ = json.Unmarshal(data, &out)
	}
	return out
}

func saveCommandHashes(guildID string, hashes map[string]string) {
	path := commandHashPath(guildID)
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	if data, err := json.MarshalIndent(hashes, "", "  "); err == nil {
		_ = os.WriteFile(path, data, 0644)
	}
}

// --- Command hashing ---

// hashCommand returns a deterministic SHA-1 of a command's stable fields.
// Runtime-only fields (IDs, versions) are excluded so the hash only moves
// when the definition actually changes.
func hashCommand(def *discordgo.ApplicationCommand) string {
	stable := map[string]interface{}{
		"name":        def.Name,
		"description": def.Description,
		"type":        def.Type,
	}
	if len(def.Options) > 0 {
		stable["options"] = normalizeOptions(def.Options)
	}
	data, _ := json.Marshal(stable)
	sum := sha1.Sum(data)
	return fmt.Sprintf("%x", sum)
}

func normalizeOptions(opts []*discordgo.ApplicationCommandOption) []map[string]interface{} {
	out := make([]map[string]interface{}, len(opts))
	for i, o := range opts {
		entry := map[string]interface{}{
			"name":        o.Name,
			"description": o.Description,
			"type":        o.Type,
			"required":    o.Required,
		}
		if o.MinValue != nil {
			entry["min_value"] = *o.MinValue
		}
		if o.MaxValue != 0 {
			entry["max_value"] = o.MaxValue
		}
		if len(o.Choices) > 0 {
			choices := make([]map[string]interface{}, len(o.Choices))
			for j, c := range o.Choices {
				choices[j] = map[string]interface{}{"name": c.Name, "value": c.Value}
			}
			entry["choices"] = choices
		}
		if len(o.Options) > 0 {
			entry["options"] = normalizeOptions(o.Options)
		}
		out[i] = entry
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i]["name"].(string) < out[j]["name"].(string)
	})
	return out
}
