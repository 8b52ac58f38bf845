package travel

import (
	"bytes"
	"fmt"
	"text/template"
)

const fallbackExamples = "actual places and dishes specific to this city"

var cityExamples = map[string]string{
	"nagpur": "Sitabardi Fort, Deekshabhoomi, Futala Lake, Ambazari Lake, Zero Mile Stone, Saoji cuisine, Orange Barfi, Tarri Poha, Sitabuldi area, Maharajbagh",
	"pune":   "Shaniwar Wada, Aga Khan Palace, Sinhagad Fort, Misal Pav, FC Road, Osho Ashram, Laxmi Road, Tulsi Baug",
	"delhi":  "Red Fort, India Gate, Qutub Minar, Chandni Chowk, Chole Bhature, Parathas, Connaught Place, Jama Masjid",
	"mumbai": "Gateway of India, Marine Drive, Juhu Beach, Vada Pav, Pav Bhaji, Colaba Causeway, Siddhivinayak Temple",
}

const cityPromptTemplate = `You are a travel expert. Provide accurate, factual travel information about {{.City}}, India.

CRITICAL: Do NOT provide information about other cities. If the user asks about {{.City}}, provide information ONLY about {{.City}}.

DO NOT mention places from other cities:
- If asked about Nagpur, do NOT mention: Shaniwar Wada, Aga Khan Palace, Sinhagad Fort, Osho Ashram, FC Road, Laxmi Road, Tulsi Baug (these are in Pune)
- If asked about Pune, do NOT mention: Sitabardi, Deekshabhoomi, Futala Lake, Saoji (these are in Nagpur)
- Each city has its own unique places and dishes - use only {{.City}}-specific information

REQUIREMENTS FOR {{.City}}:
- Mention ACTUAL place names, landmarks, monuments in {{.City}} (e.g., {{.Examples}})
- Mention ACTUAL local dishes famous in {{.City}} (not dishes from other cities)
- Mention ACTUAL temple/mosque/church names in {{.City}}
- Mention ACTUAL market names and shopping areas in {{.City}}
- Provide REAL hotel recommendations or areas in {{.City}}
- Include accurate transport information for {{.City}}
{{if .Question}}
The traveller asked: {{.Question}}
{{end}}
Start with "Meow 😺! Welcome to {{.City}}!" and provide factual, accurate information with real place names and dish names specific to {{.City}} ONLY.`

const defaultQuestion = "Tell me about travel destinations."

var cityPrompt = template.Must(template.New("city").Parse(cityPromptTemplate))

type cityPromptData struct {
	City     string
	Examples string
	Question string
}

// BuildPrompt turns a chat request into the prompt sent to the agent. With
// no city the message is passed through.
func BuildPrompt(city string, topic string, message string) (string, error) {
	if city == "" {
		if message == "" {
			return defaultQuestion, nil
		}
		return message, nil
	}

	examples, ok := cityExamples[topic]
	if !ok {
		examples = fallbackExamples
	}

	var buf bytes.Buffer
	err := cityPrompt.Execute(&buf, cityPromptData{
		City:     city,
		Examples: examples,
		Question: message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build city prompt: %w", err)
	}
	return buf.String(), nil
}
