package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data string
		ok   bool
		want callback
	}{
		{"ramazon:today:Toshkent", true, callback{Kind: cbPick, Action: "today", Region: "Toshkent"}},
		{"ramazon:tomorrow:Qoraqalpog‘iston", true, callback{Kind: cbPick, Action: "tomorrow", Region: "Qoraqalpog‘iston"}},
		{"ramazon:cancel:today", true, callback{Kind: cbCancel, Action: "today"}},
		{"ramazon:cancel:tomorrow", true, callback{Kind: cbCancel, Action: "tomorrow"}},
		{"ramazon:today", false, callback{}},
		{"other:today:Toshkent", false, callback{}},
		{"", false, callback{}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, ok := parseCallback(tt.data)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
