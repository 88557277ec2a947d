package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalUserName(t *testing.T) {
	idb := IdBuilder{Host: "warble.test"}

	name, ok := idb.LocalUserName("https://warble.test/u/alice")
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	name, ok = idb.LocalUserName("https://warble.test/u/alice/")
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	_, ok = idb.LocalUserName("https://elsewhere.example/u/alice")
	assert.False(t, ok)

	_, ok = idb.LocalUserName("https://warble.test/activity/12345")
	assert.False(t, ok)

	_, ok = idb.LocalUserName("not a url")
	assert.False(t, ok)
}

func TestUserUrlRoundTrip(t *testing.T) {
	idb := IdBuilder{Host: "warble.test"}
	name, ok := idb.LocalUserName(idb.UserUrl("birb"))
	assert.True(t, ok)
	assert.Equal(t, "birb", name)
}

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "…", TruncateWithEllipsis("1 2 3", 0))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 4))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
}
