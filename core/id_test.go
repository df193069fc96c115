package core

import (
	"regexp"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_ValidPrefix(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		expected string
	}{
		{
			name:     "simple prefix",
			prefix:   "ev",
			expected: "ev",
		},
		{
			name:     "uppercase prefix gets lowercased",
			prefix:   "EV",
			expected: "ev",
		},
		{
			name:     "prefix with leading/trailing spaces gets trimmed",
			prefix:   "  ev  ",
			expected: "ev",
		},
		{
			name:     "longer prefix",
			prefix:   "mention_event",
			expected: "mention_event",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := NewID(tc.prefix)

			// Check format: prefix_ULID
			parts := strings.Split(id, "_")
			require.Len(t, parts, strings.Count(tc.expected, "_")+2)

			assert.True(t, strings.HasPrefix(id, tc.expected+"_"), "Prefix should be cleaned correctly")

			ulidPart := id[len(tc.expected)+1:]
			assert.Len(t, ulidPart, 26, "ULID should be 26 characters long")

			// Verify it's a valid ULID format (base32 encoded)
			ulidRegex := regexp.MustCompile("^[0123456789ABCDEFGHJKMNPQRSTVWXYZ]{26}$")
			assert.True(t, ulidRegex.MatchString(ulidPart), "ULID part should match base32 format")

			_, err := ulid.Parse(ulidPart)
			assert.NoError(t, err, "ULID part should be parseable as valid ULID")
		})
	}
}

func TestNewID_EmptyPrefix_Panics(t *testing.T) {
	for _, prefix := range []string{"", "   ", "\t\t", " \t \n "} {
		assert.Panics(t, func() {
			NewID(prefix)
		}, "Should panic with empty or whitespace-only prefix")
	}
}

func TestNewID_Uniqueness(t *testing.T) {
	prefix := "ev"
	numIDs := 1000
	ids := make(map[string]bool)

	for i := 0; i < numIDs; i++ {
		id := NewID(prefix)

		assert.False(t, ids[id], "Generated ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, numIDs)
}
