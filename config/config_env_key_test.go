package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "storefront-admin",
			"log": map[string]any{
				"level": "info",
			},
		},
		"localStore": map[string]any{
			"stateDir": "/var/lib/storefront",
		},
		"sync": map[string]any{
			"projectId": "demo",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "camelCase section is recovered from the yaml keys",
			rawKey: "LOCALSTORE_STATEDIR",
			want:   "localStore.stateDir",
		},
		{
			name:   "nested sections resolve segment by segment",
			rawKey: "ENV_LOG_LEVEL",
			want:   "env.log.level",
		},
		{
			name:   "camelCase leaf under a known section",
			rawKey: "ENV_SERVICENAME",
			want:   "env.serviceName",
		},
		{
			name:   "unknown keys fall back to lowercase",
			rawKey: "SYNC_TOPICID",
			want:   "sync.topicid",
		},
		{
			name:   "entirely unknown path",
			rawKey: "FEATURE_FLAG",
			want:   "feature.flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "statedir", normalizeToken("stateDir"))
	assert.Equal(t, "statedir", normalizeToken("state_dir"))
	assert.Equal(t, "statedir", normalizeToken("STATE-DIR"))
	assert.Equal(t, "", normalizeToken("___"))
}

func TestFindExistingSegment(t *testing.T) {
	existing := map[string]any{
		"localStore": map[string]any{
			"stateDir": "/tmp",
		},
	}

	matched, next, ok := findExistingSegment(existing, "localstore")
	assert.True(t, ok)
	assert.Equal(t, "localStore", matched)
	assert.NotNil(t, next)

	_, _, ok = findExistingSegment(existing, "media")
	assert.False(t, ok)

	_, _, ok = findExistingSegment(nil, "anything")
	assert.False(t, ok)
}
