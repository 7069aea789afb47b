package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

type fakeCommand struct {
	name string
	runs int
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "fake" }
func (f *fakeCommand) Category() string    { return "Test" }
func (f *fakeCommand) Run(ctx interface{}) error {
	f.runs++
	return nil
}

func (f *fakeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: f.name, Description: "fake"}
}

func slashCtx(guildID string) *SlashContext {
	return &SlashContext{
		Event: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{GuildID: guildID},
		},
	}
}

func TestRegistry(t *testing.T) {
	Register(&fakeCommand{name: "registry-probe"})

	cmd, ok := Get("registry-probe")
	if !ok {
		t.Fatal("expected registered command to be found")
	}
	if cmd.Name() != "registry-probe" {
		t.Fatalf("got name %q, want %q", cmd.Name(), "registry-probe")
	}

	if _, ok := Get("no-such-command"); ok {
		t.Fatal("expected lookup of unknown command to fail")
	}
}

func TestAllSortedByName(t *testing.T) {
	Register(&fakeCommand{name: "sort-c"})
	Register(&fakeCommand{name: "sort-a"})
	Register(&fakeCommand{name: "sort-b"})

	var got []string
	for _, cmd := range All() {
		got = append(got, cmd.Name())
	}

	prev := ""
	for _, name := range got {
		if name < prev {
			t.Fatalf("All() not sorted: %q before %q", prev, name)
		}
		prev = name
	}
}

func TestWithGuildOnly(t *testing.T) {
	fake := &fakeCommand{name: "guildonly"}
	wrapped := Apply(fake, WithGuildOnly())

	if err := wrapped.Run(slashCtx("")); err != nil {
		t.Fatalf("DM invocation returned error: %v", err)
	}
	if fake.runs != 0 {
		t.Fatal("expected DM invocation to be dropped")
	}

	if err := wrapped.Run(slashCtx("guild-1")); err != nil {
		t.Fatalf("guild invocation returned error: %v", err)
	}
	if fake.runs != 1 {
		t.Fatalf("got %d runs, want 1", fake.runs)
	}
}

func TestFollowupParamsEphemeralFlag(t *testing.T) {
	embed := &discordgo.MessageEmbed{Description: "hello"}

	params := followupParams(embed, true)
	if params.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Fatal("ephemeral followup must carry the ephemeral flag")
	}
	if len(params.Embeds) != 1 || params.Embeds[0] != embed {
		t.Fatalf("embed not carried: %+v", params.Embeds)
	}

	if params := followupParams(embed, false); params.Flags&discordgo.MessageFlagsEphemeral != 0 {
		t.Fatal("public followup must not carry the ephemeral flag")
	}
}

func TestWrappedCommandForwardsDefinition(t *testing.T) {
	fake := &fakeCommand{name: "wrapped"}
	wrapped := Apply(fake, WithGuildOnly(), WithCommandLogger())

	sp, ok := wrapped.(SlashProvider)
	if !ok {
		t.Fatal("wrapped command lost SlashProvider")
	}
	def := sp.SlashDefinition()
	if def == nil || def.Name != "wrapped" {
		t.Fatalf("got definition %+v, want name %q", def, "wrapped")
	}
}
