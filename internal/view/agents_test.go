package view

import (
	"strings"
	"testing"

	"github.com/valo-rant/community-api/internal/core/domain"
)

func TestAbilityLabels(t *testing.T) {
	agent := domain.Agent{
		DisplayName: "Test",
		Abilities: []domain.Ability{
			{Slot: "Ability1", DisplayName: "Dash"},
			{Slot: domain.SlotUltimate, DisplayName: "Blade Storm"},
			{Slot: "Ability2", DisplayName: "Updraft"},
			{Slot: domain.SlotPassive, DisplayName: "Drift"},
			{Slot: "Grenade", DisplayName: "Cloudburst"},
		},
	}

	got := AbilityLabels(agent)
	want := []string{
		"Ability 1: Dash",
		"Ultimate: Blade Storm",
		"Ability 3: Updraft",
		"Passive: Drift",
		"Ability 5: Cloudburst",
	}

	if len(got) != len(want) {
		t.Fatalf("got %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAbilityLabelsSkipsUnnamed(t *testing.T) {
	agent := domain.Agent{
		Abilities: []domain.Ability{
			{Slot: "Ability1", DisplayName: ""},
			{Slot: "Ability2", DisplayName: "Flash"},
		},
	}

	got := AbilityLabels(agent)
	if len(got) != 1 {
		t.Fatalf("got %d labels, want 1", len(got))
	}
	// The unnamed ability does not consume a number.
	if got[0] != "Ability 1: Flash" {
		t.Fatalf("got %q, want %q", got[0], "Ability 1: Flash")
	}
}

func TestRenderAgentGrid(t *testing.T) {
	agents := []domain.Agent{
		{UUID: "u1", DisplayName: "Jett", Role: domain.AgentRole{DisplayName: "Duelist"}},
		{UUID: "u2", DisplayName: "Sage", Role: domain.AgentRole{DisplayName: "Sentinel"}},
	}

	got := RenderAgentGrid(agents)
	for _, want := range []string{"Jett", "Duelist", "Sage", "Sentinel", `data-uuid="u1"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderAgentGridEmpty(t *testing.T) {
	if got := RenderAgentGrid(nil); !strings.Contains(got, "No agents found.") {
		t.Fatalf("expected the empty placeholder, got %q", got)
	}
}

func TestRenderAgentDetail(t *testing.T) {
	agent := domain.Agent{
		DisplayName: "Sage",
		Description: "A stoic healer.",
		Role:        domain.AgentRole{DisplayName: "Sentinel"},
		Abilities: []domain.Ability{
			{Slot: "Ability1", DisplayName: "Barrier Orb", Description: "Wall off an area."},
			{Slot: domain.SlotUltimate, DisplayName: "Resurrection", Description: "Revive an ally."},
		},
	}

	got := RenderAgentDetail(agent)
	for _, want := range []string{
		"<h2>Sage</h2>",
		"A stoic healer.",
		"Ability 1: Barrier Orb",
		"Ultimate: Resurrection",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}
