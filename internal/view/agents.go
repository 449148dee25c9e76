package view

import (
	"strconv"
	"strings"

	"github.com/valo-rant/community-api/internal/core/domain"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// AbilityLabels returns the display label for each named ability, in catalog
// order. Ultimate and Passive slots get their dedicated labels; everything
// else is numbered by its position among the named abilities, so a preceding
// Ultimate or Passive still advances the number.
func AbilityLabels(agent domain.Agent) []string {
	var labels []string
	n := 0
	for _, a := range agent.Abilities {
		if a.DisplayName == "" {
			continue
		}
		n++
		switch a.Slot {
		case domain.SlotUltimate:
			labels = append(labels, "Ultimate: "+a.DisplayName)
		case domain.SlotPassive:
			labels = append(labels, "Passive: "+a.DisplayName)
		default:
			labels = append(labels, "Ability "+strconv.Itoa(n)+": "+a.DisplayName)
		}
	}
	return labels
}

// RenderAgentGrid renders the browse grid: one card per agent with portrait,
// name and role.
func RenderAgentGrid(agents []domain.Agent) string {
	if len(agents) == 0 {
		return `<p class="empty">No agents found.</p>`
	}

	var b strings.Builder
	for _, a := range agents {
		b.WriteString(`<div class="agent-card" data-uuid="` + esc(a.UUID) + `">`)
		b.WriteString(`<img src="` + esc(a.DisplayIcon) + `" alt="` + esc(a.DisplayName) + `">`)
		b.WriteString(`<h3>` + esc(a.DisplayName) + `</h3>`)
		b.WriteString(`<span class="agent-role">` + esc(a.Role.DisplayName) + `</span>`)
		b.WriteString(`</div>`)
	}
	return b.String()
}

// RenderAgentDetail renders the expanded view for a single agent with its
// description and labelled abilities.
func RenderAgentDetail(agent domain.Agent) string {
	var b strings.Builder
	b.WriteString(`<div class="agent-detail">`)
	b.WriteString(`<img src="` + esc(agent.DisplayIcon) + `" alt="` + esc(agent.DisplayName) + `">`)
	b.WriteString(`<h2>` + esc(agent.DisplayName) + `</h2>`)
	b.WriteString(`<span class="agent-role">` + esc(agent.Role.DisplayName) + `</span>`)
	b.WriteString(`<p>` + esc(agent.Description) + `</p>`)
	b.WriteString(`<ul class="abilities">`)
	i := 0
	labels := AbilityLabels(agent)
	for _, a := range agent.Abilities {
		if a.DisplayName == "" {
			continue
		}
		b.WriteString(`<li><strong>` + esc(labels[i]) + `</strong> ` + esc(a.Description) + `</li>`)
		i++
	}
	b.WriteString(`</ul>`)
	b.WriteString(`</div>`)
	return b.String()
}
