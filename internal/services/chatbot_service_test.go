package services

import (
	"strings"
	"testing"
)

func TestChatbotKnownCityHighlights(t *testing.T) {
	bot := NewChatbotService()

	want := "The best places to visit in Jabalpur are Dhuandhar Falls, the Marble Rocks at Bhedaghat, Madan Mahal Fort and the Dumna Nature Reserve."
	got := bot.Reply("What are the best places to visit in Jabalpur")
	if got != want {
		t.Errorf("jabalpur reply mismatch:\n got: %s\nwant: %s", got, want)
	}

	// Casing and surrounding whitespace must not matter
	if again := bot.Reply("  BEST PLACES TO VISIT IN JABALPUR  "); again != want {
		t.Errorf("uppercase input changed the reply: %s", again)
	}
}

func TestChatbotUnknownCityStillAnswers(t *testing.T) {
	bot := NewChatbotService()

	got := bot.Reply("best places to visit in kohima")
	if got == FallbackReply {
		t.Error("unknown city should get the generic city-page pointer, not the fallback")
	}
	if got != "I don't have a curated list for Kohima yet, but you can browse all its destinations on the city page." {
		t.Errorf("unexpected reply for unknown city: %s", got)
	}
}

func TestChatbotFirstMatchWins(t *testing.T) {
	bot := NewChatbotService()

	// "hello" matches the greeting rule even when the message also
	// mentions a later-rule topic.
	got := bot.Reply("hello, what about the weather?")
	if got != "Namaste! I'm your travel assistant for destinations across India. What would you like to know?" {
		t.Errorf("greeting rule should win: %s", got)
	}
}

func TestChatbotFallback(t *testing.T) {
	bot := NewChatbotService()

	for _, input := range []string{
		"qwerty asdf",
		"what is the meaning of life",
		"",
		"   ",
	} {
		if got := bot.Reply(input); got != FallbackReply {
			t.Errorf("Reply(%q) = %q, want the fallback", input, got)
		}
	}
}

func TestChatbotTopicRules(t *testing.T) {
	bot := NewChatbotService()

	cases := []struct {
		input        string
		wantContains string
	}{
		{"do I need a visa for India?", "e-Visa"},
		{"what currency is used", "Indian Rupee"},
		{"tell me about the taj mahal", "closed on Fridays"},
		{"how do I get to Varanasi", "connected by air, rail and road"},
		{"any good beaches?", "Goa"},
		{"thanks a lot", "Shubh yatra"},
	}

	for _, tc := range cases {
		got := bot.Reply(tc.input)
		if got == FallbackReply {
			t.Errorf("Reply(%q) hit the fallback", tc.input)
			continue
		}
		if !strings.Contains(got, tc.wantContains) {
			t.Errorf("Reply(%q) = %q, expected it to mention %q", tc.input, got, tc.wantContains)
		}
	}
}
