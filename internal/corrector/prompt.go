package corrector

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
)

const correctionPromptTemplate = `CRITICAL ERROR: You provided information about "{{.Foreign}}" (including places like {{.ForeignPlaces}}) but the user asked about "{{.Expected}}".

You MUST provide information about "{{.Expected}}" ONLY. Do not mention "{{.Foreign}}" or any places from "{{.Foreign}}".

Provide comprehensive travel information about "{{.Expected}}" including:
1. Food and famous dishes in {{.Expected}}
2. Hotels (budget, mid-range, luxury) in {{.Expected}}
3. Tourist spots in {{.Expected}}
4. Temples and religious places in {{.Expected}}
5. Markets and shopping in {{.Expected}}
6. Transport tips and best time to visit {{.Expected}}

Start with "Meow 😺! Welcome to {{.Expected}}!" and mention {{.Expected}} multiple times.`

const samplePlaces = 3

type correctionPromptData struct {
	Foreign       string
	ForeignPlaces string
	Expected      string
}

func parseCorrectionPrompt() *template.Template {
	return template.Must(template.New("correction").Parse(correctionPromptTemplate))
}

func (c *Corrector) buildPrompt(foreign string, expected string) (string, error) {
	places := "various landmarks"
	if profile, ok := c.detector.Table().Get(foreign); ok && len(profile.Markers) > 0 {
		places = strings.Join(profile.SampleMarkers(samplePlaces), ", ")
	}

	data := correctionPromptData{
		Foreign:       topics.DisplayName(foreign),
		ForeignPlaces: places,
		Expected:      topics.DisplayName(expected),
	}

	var buf bytes.Buffer
	if err := c.prompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
