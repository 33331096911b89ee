// Package conversation provides intent parsing, intent dispatch, and
// user notification implementations.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches customer input to intents using keywords and
// simple patterns. Swap it for the LLM-backed extractor when keys are
// configured; it also serves as the fallback when the LLM is down.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// addPrefix strips ordering lead-ins ("i'd like", "can i get", ...).
var addPrefix = regexp.MustCompile(`(?i)^(add|i'?d like|i would like|can i (?:get|have)|i want|i'?ll (?:have|take)|give me|get me|let me (?:get|have))\b`)

// removePrefix strips removal lead-ins.
var removePrefix = regexp.MustCompile(`(?i)^(remove|take (?:off|out|back)|drop)\b`)

// leadingArticle strips "a", "an", "the", "my", and "some" from the
// front of a mention.
var leadingArticle = regexp.MustCompile(`(?i)^(a|an|the|my|some)\s+`)

// trailingNoise strips politeness and order references off the tail.
var trailingNoise = regexp.MustCompile(`(?i)[,.!?\s]*(please|thanks|thank you|to my order|from my order|for me)[.!?]*$`)

// numberWords maps spelled-out counts customers actually say.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(menu|show (?:me )?(?:the )?menu|what do you have|what'?s on the menu)[.!?]*$`), domain.IntentShowMenu},
		{regexp.MustCompile(`(?i)^(order|my order|show (?:me )?(?:my )?order|what'?s (?:in )?my order(?: so far)?)[.!?]*$`), domain.IntentShowOrder},
		{regexp.MustCompile(`(?i)^(history|order history|(?:show (?:me )?)?(?:my )?(?:past|previous|completed) orders)[.!?]*$`), domain.IntentShowHistory},
		{regexp.MustCompile(`(?i)^(new order|start over|start (?:a )?new order|scratch that,? start over)[.!?]*$`), domain.IntentStartOrder},
		{regexp.MustCompile(`(?i)^(checkout|check out|that'?s (?:it|all|everything)|i'?m done|pay)[.!?]*$`), domain.IntentCheckout},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q|bye|goodbye|leave)[.!?]*$`), domain.IntentQuit},
	}
	return p
}

// Parse converts customer input into an intent. Add/remove turns carry
// the item mention plus any quantity and size the turn named; everything
// unrecognized comes back as IntentUnknown with the raw text preserved
// so an LLM fallback can take a swing at it.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown, Quantity: 1}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent, Quantity: 1}, nil
		}
	}

	if loc := removePrefix.FindStringIndex(trimmed); loc != nil {
		intent := p.parseMention(trimmed[loc[1]:])
		intent.Type = domain.IntentRemoveItem
		return intent, nil
	}

	if loc := addPrefix.FindStringIndex(trimmed); loc != nil {
		intent := p.parseMention(trimmed[loc[1]:])
		intent.Type = domain.IntentAddItem
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Item: trimmed, Quantity: 1}, nil
}

// parseMention pulls quantity and size out of an item mention, leaving
// the rest as the free text the resolver chews on.
func (p *KeywordParser) parseMention(raw string) *domain.Intent {
	mention := strings.TrimSpace(raw)
	mention = trailingNoise.ReplaceAllString(mention, "")
	mention = strings.TrimSpace(mention)
	mention = leadingArticle.ReplaceAllString(mention, "")

	quantity := 1
	size := domain.SizeNone

	words := strings.Fields(mention)
	var kept []string
	for i, word := range words {
		lower := strings.ToLower(strings.Trim(word, ",.!?"))

		// A count only means quantity at the front of the mention, and
		// not when it names a portion -- "10 piece McNuggets" keeps its 10.
		if i == 0 && !portionFollows(words) {
			if n, ok := parseCount(lower); ok {
				quantity = n
				continue
			}
		}
		if s := domain.SizeFromString(lower); s != domain.SizeNone && size == domain.SizeNone {
			size = s
			continue
		}
		kept = append(kept, word)
	}

	return &domain.Intent{
		Item:     strings.Join(kept, " "),
		Quantity: quantity,
		Size:     size,
	}
}

// portionFollows reports whether the word after a leading count names a
// portion rather than a quantity.
func portionFollows(words []string) bool {
	if len(words) < 2 {
		return false
	}
	switch strings.ToLower(strings.Trim(words[1], ",.!?")) {
	case "piece", "pieces", "pc":
		return true
	}
	return false
}

// parseCount reads "2", "2x", or "two" style counts.
func parseCount(word string) (int, bool) {
	if n, ok := numberWords[word]; ok {
		return n, true
	}
	word = strings.TrimSuffix(word, "x")
	if word == "" {
		return 0, false
	}
	n := 0
	for _, c := range word {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		return 0, false
	}
	return n, true
}
