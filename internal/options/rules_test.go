package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElide(t *testing.T) {
	testCases := []struct {
		name        string
		process     Process
		prefs       Dict
		want        Dict
		wantDropped []string
	}{
		{
			name:        "prerequisite missing",
			process:     Map,
			prefs:       Dict{"Placer Extra Effort": "Boosted"},
			want:        Dict{},
			wantDropped: []string{"Placer Extra Effort"},
		},
		{
			name:        "prerequisite fails",
			process:     Map,
			prefs:       Dict{"Placer Extra Effort": "Boosted", "Placer Effort Level": "Standard"},
			want:        Dict{"Placer Effort Level": "Standard"},
			wantDropped: []string{"Placer Extra Effort"},
		},
		{
			name:    "prerequisite holds",
			process: Map,
			prefs:   Dict{"Placer Extra Effort": "Boosted", "Placer Effort Level": "High"},
			want:    Dict{"Placer Extra Effort": "Boosted", "Placer Effort Level": "High"},
		},
		{
			name:    "dependent absent is a no-op",
			process: Synthesize,
			prefs:   Dict{"Use Synthesis Constraints File": false},
			want:    Dict{"Use Synthesis Constraints File": false},
		},
		{
			name:        "one prerequisite, several dependents",
			process:     Synthesize,
			prefs:       Dict{"FSM Extraction": false, "FSM Encoding Algorithm": "Gray", "Safe Implementation": "Yes"},
			want:        Dict{"FSM Extraction": false},
			wantDropped: []string{"FSM Encoding Algorithm", "Safe Implementation"},
		},
		{
			name:    "rules of other processes are ignored",
			process: PlaceAndRoute,
			prefs:   Dict{"Placer Extra Effort": "Boosted"},
			want:    Dict{"Placer Extra Effort": "Boosted"},
		},
		{
			name:    "nil preferences",
			process: Map,
			prefs:   nil,
			want:    Dict{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, dropped := Elide(tc.process, tc.prefs)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantDropped, dropped)
		})
	}
}

func TestElide_Idempotent(t *testing.T) {
	prefs := Dict{
		"Placer Extra Effort":                         "Normal",
		"Extra Cost Tables":                           "1",
		"Perform Timing-Driven Packing and Placement": true,
		"Placer Effort Level":                         "Standard",
	}

	once, _ := Elide(Map, prefs)
	twice, dropped := Elide(Map, once)
	assert.Equal(t, once, twice)
	assert.Empty(t, dropped)
}

func TestElide_ReachesFixpoint(t *testing.T) {
	chain := []Rule{
		{Map, "C", "B", Equals("on")},
		{Map, "B", "A", Equals("on")},
	}

	got, dropped := elide(chain, Map, Dict{"A": "off", "B": "on", "C": "on"})
	assert.Equal(t, Dict{"A": "off"}, got)
	assert.Equal(t, []string{"B", "C"}, dropped)

	again, dropped := elide(chain, Map, got)
	assert.Equal(t, got, again)
	assert.Empty(t, dropped)
}

func TestElide_CopiesInput(t *testing.T) {
	prefs := Dict{"Placer Extra Effort": "Boosted"}
	_, _ = Elide(Map, prefs)
	assert.Contains(t, prefs, "Placer Extra Effort")
}

func TestPredicates(t *testing.T) {
	assert.True(t, Equals("High")("High"))
	assert.False(t, Equals("High")("high"))
	assert.False(t, Equals(true)("true"))
	assert.True(t, NotEquals(false)(nil))
	assert.False(t, NotEquals(false)(false))
}
