package corrector

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
)

const greetingOpener = "Meow 😺!"

// ShortGreeting is the opening phrase every travel answer should start with.
func ShortGreeting(topic string) string {
	return fmt.Sprintf("%s Welcome to %s! ", greetingOpener, topics.DisplayName(topic))
}

// IntroGreeting is prepended when the answer never names the topic.
func IntroGreeting(topic string) string {
	name := topics.DisplayName(topic)
	return fmt.Sprintf("%s Welcome to %s! Let me provide you with information about %s.\n\n", greetingOpener, name, name)
}

// HasGreeting reports whether text already opens with the greeting for topic.
func HasGreeting(text string, topic string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(lower, "meow") && mentionsWelcome(lower, topic)
}

func mentionsWelcome(text string, topic string) bool {
	return strings.Contains(strings.ToLower(text), "welcome to "+topics.Normalize(topic))
}
