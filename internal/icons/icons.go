// Package icons maps activity hints and names to Lucide icon names.
package icons

import "strings"

// Default is returned when neither the hint nor the name matches anything.
const Default = "circle-help"

var lucideByHint = map[string]string{
	"archery":             "target",
	"athletics":           "footprints",
	"badminton":           "grip",
	"basketball":          "dumbbell",
	"chess":               "brain",
	"choir":               "music",
	"community service":   "helping-hand",
	"computer club":       "puzzle",
	"cricket":             "grip",
	"cycling":             "bike",
	"debate":              "users-round",
	"drama":               "drama",
	"environmental club":  "bird",
	"fencing":             "swords",
	"field hockey":        "goal",
	"fishing":             "fish",
	"football":            "goal",
	"golf":                "target",
	"hockey":              "goal",
	"horse riding":        "person-standing",
	"karate":              "person-standing",
	"marimba band":        "music",
	"netball":             "dumbbell",
	"orchestra":           "music",
	"public speaking":     "mic-vocal",
	"quiz club":           "shield-question",
	"rowing":              "sailboat",
	"rugby":               "dumbbell",
	"soccer":              "goal",
	"squash":              "grip",
	"swimming":            "fish",
	"table tennis":        "grip",
	"tennis":              "grip",
	"volleyball":          "dumbbell",
	"water polo":          "fish",
	"art":                 "palette",
	"art club":            "palette",
	"book club":           "book-open",
	"climbing":            "mountain-snow",
	"club":                "users",
	"cultural":            "palette",
	"expedition":          "tent",
	"major sport":         "landmark",
	"minor sport":         "activity",
	"music":               "music",
	"piano lessons":       "piano",
	"service":             "hand-heart",
	"social service":      "hand-heart",
	"sport":               "activity",
	"team sport":          "users",
}

// keywordFallbacks are tried in order when there is no exact match.
var keywordFallbacks = []struct {
	keywords []string
	icon     string
}{
	{[]string{"music", "band", "choir"}, "music"},
	{[]string{"art", "craft"}, "palette"},
	{[]string{"service"}, "hand-heart"},
	{[]string{"club"}, "users"},
	{[]string{"sport"}, "activity"},
	{[]string{"team"}, "users"},
}

// For returns the Lucide icon name for an activity. The hint wins over the
// name when both are set.
func For(hint, name string) string {
	key := strings.ToLower(strings.TrimSpace(hint))
	if key == "" {
		key = strings.ToLower(strings.TrimSpace(name))
	}
	if icon, ok := lucideByHint[key]; ok {
		return icon
	}
	for _, fb := range keywordFallbacks {
		for _, kw := range fb.keywords {
			if strings.Contains(key, kw) {
				return fb.icon
			}
		}
	}
	return Default
}
