package compliance

import (
	"strings"
	"unicode"

	"github.com/playperu/sportselect/internal/sportselect"
)

// CategoryRule is the requirement one rule set places on one category.
type CategoryRule struct {
	MinSports int
	Optional  bool
	// MaxSports caps mandatory categories; 0 means unbounded.
	MaxSports int
	// SpecificSports lists sport IDs that must all be selected.
	SpecificSports []string
}

// ValidationResult is what a custom Validator reports.
type ValidationResult struct {
	Compliant bool
	Message   string
}

// Validator encodes cross-category conditions that per-category minimums
// cannot express.
type Validator func(selected []sportselect.Sport, sessions []sportselect.Session) ValidationResult

// RuleSet holds the compliance rules for one age bracket. Rule sets returned
// by Resolve and All are shared and must be treated as read-only.
type RuleSet struct {
	ID               string
	Name             string
	Description      []string
	MinTotalSessions int
	// MaxTotalSessions of 0 means no upper bound.
	MaxTotalSessions int
	// Categories absent from the map are optional.
	Categories map[sportselect.Category]CategoryRule
	Custom     Validator
}

var (
	u14u16Rules = &RuleSet{
		ID:   "U14-U16",
		Name: "Under 14 to Under 16",
		Description: []string{
			`Minimum 2 "Red" category sports.`,
			`Minimum 1 "Green" category activity.`,
			`Minimum 1 "Blue" category sport.`,
			"Minimum 8 total weekly sessions.",
		},
		MinTotalSessions: 8,
		Categories: map[sportselect.Category]CategoryRule{
			sportselect.CategoryRed:    {MinSports: 2},
			sportselect.CategoryGreen:  {MinSports: 1},
			sportselect.CategoryBlue:   {MinSports: 1},
			sportselect.CategoryYellow: {MinSports: 0, Optional: true},
		},
	}

	u17Rules = &RuleSet{
		ID:   "U17",
		Name: "Under 17",
		Description: []string{
			`Minimum 1 "Red" category sport.`,
			`Minimum 2 other activities from "Green" or "Blue".`,
			"Minimum 6 total weekly sessions.",
		},
		MinTotalSessions: 6,
		Categories: map[sportselect.Category]CategoryRule{
			sportselect.CategoryRed: {MinSports: 1},
			// Green and Blue are only checked as a sum by the validator.
			sportselect.CategoryGreen:  {MinSports: 0},
			sportselect.CategoryBlue:   {MinSports: 0},
			sportselect.CategoryYellow: {MinSports: 0, Optional: true},
		},
		Custom: validateU17,
	}

	u18u20Rules = &RuleSet{
		ID:   "U18-U20",
		Name: "Under 18 to Under 20",
		Description: []string{
			`Minimum 1 "Red" OR 1 "Blue" category sport.`,
			"Minimum 2 other activities from any category (excluding the one chosen for the first rule if Red/Blue).",
			"Minimum 5 total weekly sessions.",
		},
		MinTotalSessions: 5,
		Categories: map[sportselect.Category]CategoryRule{
			sportselect.CategoryRed:    {MinSports: 0},
			sportselect.CategoryGreen:  {MinSports: 0},
			sportselect.CategoryBlue:   {MinSports: 0},
			sportselect.CategoryYellow: {MinSports: 0, Optional: true},
		},
		Custom: validateU18U20,
	}

	allRules = []*RuleSet{u14u16Rules, u17Rules, u18u20Rules}
)

// bracketTokens is checked in order; the first rule set with a token
// contained in the normalized label wins.
var bracketTokens = []struct {
	tokens []string
	rules  *RuleSet
}{
	{[]string{"under14", "u14", "under15", "u15", "under16", "u16"}, u14u16Rules},
	{[]string{"under17", "u17"}, u17Rules},
	{[]string{"under18", "u18", "under19", "u19", "under20", "u20"}, u18u20Rules},
}

// Resolve returns the rule set for an age-group label such as "Under 16" or
// "U17". Matching ignores case and whitespace. It returns nil when no
// bracket matches.
func Resolve(ageGroup string) *RuleSet {
	label := normalizeAgeGroup(ageGroup)
	if label == "" {
		return nil
	}
	for _, b := range bracketTokens {
		for _, tok := range b.tokens {
			if strings.Contains(label, tok) {
				return b.rules
			}
		}
	}
	return nil
}

// All returns the built-in rule sets in bracket order.
func All() []*RuleSet {
	out := make([]*RuleSet, len(allRules))
	copy(out, allRules)
	return out
}

func normalizeAgeGroup(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

func validateU17(selected []sportselect.Sport, _ []sportselect.Session) ValidationResult {
	counts := countByCategory(selected)

	redMet := counts[sportselect.CategoryRed] >= 1
	otherMet := counts[sportselect.CategoryGreen]+counts[sportselect.CategoryBlue] >= 2
	if redMet && otherMet {
		return ValidationResult{Compliant: true}
	}

	var msgs []string
	if !redMet {
		msgs = append(msgs, "Requires at least 1 Red sport.")
	}
	if !otherMet {
		msgs = append(msgs, "Requires at least 2 additional activities from Green or Blue.")
	}
	return ValidationResult{Message: strings.Join(msgs, " ")}
}

// validateU18U20 needs one Red or Blue in the primary slot plus two others.
// Red takes the primary slot when present, so every Blue then counts as an
// other; without Red, one Blue takes the slot. Green and Yellow always count
// as others.
func validateU18U20(selected []sportselect.Sport, _ []sportselect.Session) ValidationResult {
	counts := countByCategory(selected)
	red, blue := counts[sportselect.CategoryRed], counts[sportselect.CategoryBlue]

	if red == 0 && blue == 0 {
		return ValidationResult{Message: "Requires at least 1 Red OR 1 Blue sport."}
	}

	others := counts[sportselect.CategoryGreen] + counts[sportselect.CategoryYellow]
	if red > 0 {
		others += red - 1 + blue
	} else {
		others += blue - 1
	}

	if others < 2 {
		return ValidationResult{Message: "Requires 2 other activities from any category (excluding the primary Red/Blue choice)."}
	}
	return ValidationResult{Compliant: true}
}
