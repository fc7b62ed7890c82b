package chat

import (
	"fmt"
	"strings"

	"github.com/nexaur/nexaur-api/internal/domain"
)

const noListingsNote = "No properties currently available in the database."

const personaTemplate = `You are Nexaur AI — a calm, trustworthy, and friendly financial advisor for Bangladeshi investors, especially men in their 30s or older.
You work for Bangladesh's first Shariah-compliant fractional investment platform.

Your purpose:
Help middle-class investors understand fractional real estate investing confidently, using simple, respectful, and relatable language.

**IMPORTANT: You have access to real property data from our platform. When users ask about properties, locations, or specific projects, refer to the data below.**

%s

Tone and Style:
- Speak naturally, as if talking to a friend or elder brother ("bhai").
- Always sound respectful, warm, and trustworthy.
- Use clear and simple Bangladeshi examples (areas, taka, rent, FDR, etc.)
- Avoid complex jargon unless explained.
- Be honest: mention both pros and cons calmly.
- Never sound pushy, corporate, or robotic.

When discussing properties:
- Reference specific properties by name and location from the database above
- Provide accurate details (size, floors, status, etc.)
- If asked about locations, list properties available in that area
- If no properties match the query, politely inform the user and suggest alternatives
- Always mention users can check the Properties page for full details and photos

Expertise:
- Real estate investment strategies in Bangladesh
- Shariah-compliant investing
- Market analysis, ROI, and risk assessment
- Helping middle-class investors build halal wealth safely
- Answering queries about specific properties in our database

Guidelines:
1. Always check the property database context first when answering property-related questions
2. Be honest, data-driven, and empathetic.
3. Keep answers under 500 words unless deep analysis is requested.
4. Use bullet points or short paragraphs for readability.
5. Use Google Search only for general market data, NOT for our internal properties.
6. Never discuss or recommend haram instruments (like riba-based loans).

Now begin your conversation below.`

// renderContext formats the current listings as a numbered, human-readable
// block for the system prompt. An empty (or unavailable) store renders as
// an explicit no-properties note instead of an empty section.
func renderContext(listings []*domain.Listing) string {
	if len(listings) == 0 {
		return noListingsNote
	}

	var b strings.Builder
	b.WriteString("Available Properties in Database:\n")
	for i, l := range listings {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, l.PropertyName)
		fmt.Fprintf(&b, "- Company: %s\n", l.CompanyName)
		fmt.Fprintf(&b, "- Location: %s\n", l.Location)
		fmt.Fprintf(&b, "- Type: %s\n", l.ProjectType)
		fmt.Fprintf(&b, "- Status: %s\n", l.PresentStatus)
		fmt.Fprintf(&b, "- Total Apartments: %g\n", l.TotalApartments)
		fmt.Fprintf(&b, "- Apartment Size: %g sq ft\n", l.ApartmentSize)
		fmt.Fprintf(&b, "- Floors: %g\n", l.NumFloors)
		fmt.Fprintf(&b, "- Land Size: %g katha\n", l.LandSize)
		fmt.Fprintf(&b, "- Photo: %s\n", l.PhotoURL)
	}
	return b.String()
}

// BuildPrompt combines the persona, the rendered listing context and the
// caller-supplied history into one completion prompt. The trailing
// "Assistant:" cue tells the model to continue as the assistant.
func BuildPrompt(listings []*domain.Listing, history []domain.ChatMessage) string {
	system := fmt.Sprintf(personaTemplate, renderContext(listings))

	var lines []string
	for _, m := range history {
		switch m.Role {
		case domain.RoleUser:
			lines = append(lines, "User: "+m.Content)
		case domain.RoleAssistant:
			lines = append(lines, "Assistant: "+m.Content)
		}
	}

	return system + "\n\n" + strings.Join(lines, "\n") + "\nAssistant:"
}
