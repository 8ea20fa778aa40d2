package compliance

import (
	"strings"
	"testing"

	"github.com/playperu/sportselect/internal/sportselect"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Under 14", "U14-U16"},
		{"u15", "U14-U16"},
		{"under 16", "U14-U16"},
		{"U16", "U14-U16"},
		{"Under16", "U14-U16"},
		{"  UNDER   16 ", "U14-U16"},
		{"Under 17", "U17"},
		{"U 17", "U17"},
		{"Under 18", "U18-U20"},
		{"u19", "U18-U20"},
		{"Under\t20", "U18-U20"},
		{"Under 25", ""},
		{"Senior", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := Resolve(tt.label)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("Resolve(%q) = %s, want nil", tt.label, got.ID)
				}
				return
			}
			if got == nil {
				t.Fatalf("Resolve(%q) = nil, want %s", tt.label, tt.want)
			}
			if got.ID != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.label, got.ID, tt.want)
			}
		})
	}
}

func TestResolveReturnsSameInstance(t *testing.T) {
	a, b, c := Resolve("under 16"), Resolve("U16"), Resolve("Under16")
	if a == nil || a != b || b != c {
		t.Fatalf("labels resolved to different rule sets: %p %p %p", a, b, c)
	}
}

func TestBuiltinThresholds(t *testing.T) {
	tests := []struct {
		id          string
		minSessions int
		red, green  int
		blue        int
		custom      bool
	}{
		{"U14-U16", 8, 2, 1, 1, false},
		{"U17", 6, 1, 0, 0, true},
		{"U18-U20", 5, 0, 0, 0, true},
	}

	all := All()
	if len(all) != len(tests) {
		t.Fatalf("len(All()) = %d, want %d", len(all), len(tests))
	}
	for i, tt := range tests {
		rs := all[i]
		if rs.ID != tt.id {
			t.Fatalf("All()[%d] = %s, want %s", i, rs.ID, tt.id)
		}
		if rs.MinTotalSessions != tt.minSessions {
			t.Errorf("%s: min sessions = %d, want %d", tt.id, rs.MinTotalSessions, tt.minSessions)
		}
		if got := rs.Categories[sportselect.CategoryRed].MinSports; got != tt.red {
			t.Errorf("%s: red = %d, want %d", tt.id, got, tt.red)
		}
		if got := rs.Categories[sportselect.CategoryGreen].MinSports; got != tt.green {
			t.Errorf("%s: green = %d, want %d", tt.id, got, tt.green)
		}
		if got := rs.Categories[sportselect.CategoryBlue].MinSports; got != tt.blue {
			t.Errorf("%s: blue = %d, want %d", tt.id, got, tt.blue)
		}
		if !rs.Categories[sportselect.CategoryYellow].Optional {
			t.Errorf("%s: yellow should be optional", tt.id)
		}
		if (rs.Custom != nil) != tt.custom {
			t.Errorf("%s: has custom = %v, want %v", tt.id, rs.Custom != nil, tt.custom)
		}
	}
}

func TestU17Validator(t *testing.T) {
	tests := []struct {
		name        string
		selected    []sportselect.Sport
		want        bool
		wantMessage string
	}{
		{"1 red 2 green", []sportselect.Sport{red1, green1, green2}, true, ""},
		{"1 red 1 green 1 blue", []sportselect.Sport{red1, green1, blue1}, true, ""},
		{"no red", []sportselect.Sport{green1, green2}, false, "Requires at least 1 Red sport."},
		{"1 red 1 green", []sportselect.Sport{red1, green1}, false, "Requires at least 2 additional activities from Green or Blue."},
		{"yellow does not count as other", []sportselect.Sport{red1, green1, yellow1}, false, "Requires at least 2 additional activities from Green or Blue."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := u17Rules.Custom(tt.selected, nil)
			if got.Compliant != tt.want {
				t.Fatalf("compliant = %v, want %v (message %q)", got.Compliant, tt.want, got.Message)
			}
			if !strings.Contains(got.Message, tt.wantMessage) {
				t.Errorf("message = %q, want it to contain %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestU17ValidatorBothMessages(t *testing.T) {
	got := u17Rules.Custom(nil, nil)
	want := "Requires at least 1 Red sport. Requires at least 2 additional activities from Green or Blue."
	if got.Compliant || got.Message != want {
		t.Errorf("got %+v, want non-compliant with %q", got, want)
	}
}

// The primary slot goes to Red whenever Red is present, so a Blue next to a
// Red always counts as an "other". This asymmetry is kept as is.
func TestU18U20Validator(t *testing.T) {
	tests := []struct {
		name        string
		selected    []sportselect.Sport
		want        bool
		wantMessage string
	}{
		{"1 red 2 green", []sportselect.Sport{red1, green1, green2}, true, ""},
		{"1 blue 1 yellow 1 green", []sportselect.Sport{blue1, yellow1, green1}, true, ""},
		{"red primary blue and green others", []sportselect.Sport{red1, blue1, green1}, true, ""},
		{"2 red 1 green", []sportselect.Sport{red1, red2, green1}, true, ""},
		{"2 blue 1 green", []sportselect.Sport{blue1, blue2, green1}, true, ""},
		{"red and blue only", []sportselect.Sport{red1, blue1}, false, "Requires 2 other activities"},
		{"2 blue only", []sportselect.Sport{blue1, blue2}, false, "Requires 2 other activities"},
		{"no red no blue", []sportselect.Sport{green1, yellow1}, false, "Requires at least 1 Red OR 1 Blue sport."},
		{"1 red 1 green", []sportselect.Sport{red1, green1}, false, "Requires 2 other activities"},
		{"1 red only", []sportselect.Sport{red1}, false, "Requires 2 other activities"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := u18u20Rules.Custom(tt.selected, nil)
			if got.Compliant != tt.want {
				t.Fatalf("compliant = %v, want %v (message %q)", got.Compliant, tt.want, got.Message)
			}
			if !strings.Contains(got.Message, tt.wantMessage) {
				t.Errorf("message = %q, want it to contain %q", got.Message, tt.wantMessage)
			}
		})
	}
}
