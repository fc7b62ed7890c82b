package chat

import (
	"strings"
	"testing"

	"github.com/nexaur/nexaur-api/internal/domain"
)

func TestRenderContext(t *testing.T) {
	tests := []struct {
		name     string
		listings []*domain.Listing
		want     []string
	}{
		{
			name:     "empty store",
			listings: nil,
			want:     []string{"No properties currently available"},
		},
		{
			name: "single listing",
			listings: []*domain.Listing{
				{
					PropertyName:    "Lake View",
					CompanyName:     "Nexaur Dev Ltd",
					Location:        "Gulshan",
					ProjectType:     "Residential",
					PresentStatus:   "Under Construction",
					TotalApartments: 10,
					ApartmentSize:   1200,
					NumFloors:       5,
					LandSize:        3,
					PhotoURL:        "https://example.com/p.jpg",
				},
			},
			want: []string{
				"1. Lake View",
				"- Company: Nexaur Dev Ltd",
				"- Apartment Size: 1200 sq ft",
				"- Land Size: 3 katha",
				"- Photo: https://example.com/p.jpg",
			},
		},
		{
			name: "numbering is sequential",
			listings: []*domain.Listing{
				{PropertyName: "A"},
				{PropertyName: "B"},
				{PropertyName: "C"},
			},
			want: []string{"1. A", "2. B", "3. C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderContext(tt.listings)
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("rendered context missing %q:\n%s", fragment, got)
				}
			}
		})
	}
}

func TestBuildPromptShape(t *testing.T) {
	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "Hello"},
		{Role: domain.RoleAssistant, Content: "Hi bhai"},
		{Role: domain.Role("system"), Content: "ignored"},
	}

	prompt := BuildPrompt(nil, history)

	if !strings.HasPrefix(prompt, "You are Nexaur AI") {
		t.Errorf("prompt does not start with the persona: %q", prompt[:40])
	}
	if !strings.HasSuffix(prompt, "\nAssistant:") {
		t.Errorf("prompt does not end with the assistant cue")
	}
	if !strings.Contains(prompt, "User: Hello\nAssistant: Hi bhai") {
		t.Errorf("history turns not rendered in order:\n%s", prompt)
	}
	if strings.Contains(prompt, "ignored") {
		t.Errorf("unknown role should be dropped from the prompt")
	}
}
