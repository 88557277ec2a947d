package dal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warble/shared"
)

type nopLogger struct{}

func (l *nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (l *nopLogger) Debugf(format string, args ...interface{})     {}
func (l *nopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (l *nopLogger) Infof(format string, args ...interface{})      {}
func (l *nopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (l *nopLogger) Warnf(format string, args ...interface{})      {}
func (l *nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (l *nopLogger) Errorf(format string, args ...interface{})     {}
func (l *nopLogger) Printf(format string, args ...interface{})     {}

func newTestRepo(t *testing.T) IRepo {
	cfg := &shared.Config{
		Host:   "test.host",
		DbFile: filepath.Join(t.TempDir(), "test.sqlite"),
		Instance: &shared.InstanceInfo{
			Admin:     "admin",
			Published: time.Now().UTC(),
		},
	}
	repo := NewRepo(cfg, &nopLogger{})
	repo.InitUpdateDb()
	return repo
}

func TestObjectRoundTrip(t *testing.T) {

	repo := newTestRepo(t)

	id := "https://stardust.community/u/pixie/status/123?x=1#frag"
	payload := map[string]any{"type": "Note", "content": "henlo"}

	saved, err := repo.SaveObject(&StoredObject{Id: id, Payload: payload})
	require.Nil(t, err)
	assert.Equal(t, id, saved.Id)

	got, err := repo.GetObject(id)
	require.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.Id)
	assert.Equal(t, "henlo", got.Payload["content"])

	got, err = repo.GetObject("https://stardust.community/u/pixie/status/999")
	require.Nil(t, err)
	assert.Nil(t, got)
}

func TestObjectSaveRequiresId(t *testing.T) {

	repo := newTestRepo(t)

	_, err := repo.SaveObject(&StoredObject{Payload: map[string]any{"a": 1}})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = repo.SaveActivity(&StoredActivity{Payload: map[string]any{"a": 1}})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestObjectOverwriteKeepsCreatedAt(t *testing.T) {

	repo := newTestRepo(t)

	id := "https://stardust.community/obj/1"
	_, err := repo.SaveObject(&StoredObject{Id: id, Payload: map[string]any{"v": "one"}})
	require.Nil(t, err)
	first, err := repo.GetObject(id)
	require.Nil(t, err)

	_, err = repo.SaveObject(&StoredObject{Id: id, Payload: map[string]any{"v": "two"}})
	require.Nil(t, err)
	second, err := repo.GetObject(id)
	require.Nil(t, err)

	assert.Equal(t, "two", second.Payload["v"])
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
}

func TestActivityDerivedFields(t *testing.T) {

	repo := newTestRepo(t)

	id := "https://stardust.community/act/1"
	pubStr := "2026-02-03T10:00:00Z"
	payload := map[string]any{
		"type":      "Create",
		"actor":     "https://stardust.community/u/pixie",
		"published": pubStr,
	}
	_, err := repo.SaveActivity(&StoredActivity{Id: id, Payload: payload})
	require.Nil(t, err)

	got, err := repo.GetActivity(id)
	require.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://stardust.community/u/pixie", got.Actor)
	expected, _ := time.Parse(time.RFC3339, pubStr)
	assert.Equal(t, expected.Unix(), got.Published.Unix())
}

func TestUpdateActivityMerge(t *testing.T) {

	repo := newTestRepo(t)

	id := "https://stardust.community/act/merge"
	_, err := repo.SaveActivity(&StoredActivity{Id: id,
		Payload: map[string]any{"a": "one", "b": "two"}})
	require.Nil(t, err)

	// Shallow merge keeps untouched fields
	err = repo.UpdateActivity(&StoredActivity{Id: id,
		Payload: map[string]any{"b": "changed", "c": "new"}}, false)
	require.Nil(t, err)
	got, err := repo.GetActivity(id)
	require.Nil(t, err)
	assert.Equal(t, "one", got.Payload["a"])
	assert.Equal(t, "changed", got.Payload["b"])
	assert.Equal(t, "new", got.Payload["c"])

	// Full replace drops them
	err = repo.UpdateActivity(&StoredActivity{Id: id,
		Payload: map[string]any{"d": "only"}}, true)
	require.Nil(t, err)
	got, err = repo.GetActivity(id)
	require.Nil(t, err)
	assert.NotContains(t, got.Payload, "a")
	assert.Equal(t, "only", got.Payload["d"])
}

func TestUpdateActivityMissingSaves(t *testing.T) {

	repo := newTestRepo(t)

	id := "https://stardust.community/act/fresh"
	err := repo.UpdateActivity(&StoredActivity{Id: id,
		Payload: map[string]any{"x": "y"}}, false)
	require.Nil(t, err)

	got, err := repo.GetActivity(id)
	require.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "y", got.Payload["x"])
}

func TestUpdateActivityMeta(t *testing.T) {

	repo := newTestRepo(t)

	// Absent activity: silent no-op
	err := repo.UpdateActivityMeta("https://nope.example/act/0", "seen", true, false)
	require.Nil(t, err)
	got, err := repo.GetActivity("https://nope.example/act/0")
	require.Nil(t, err)
	assert.Nil(t, got)

	id := "https://stardust.community/act/meta"
	_, err = repo.SaveActivity(&StoredActivity{Id: id, Payload: map[string]any{"a": 1}})
	require.Nil(t, err)

	err = repo.UpdateActivityMeta(id, "seen", true, false)
	require.Nil(t, err)
	got, err = repo.GetActivity(id)
	require.Nil(t, err)
	assert.Equal(t, true, got.Meta["seen"])

	err = repo.UpdateActivityMeta(id, "seen", nil, true)
	require.Nil(t, err)
	got, err = repo.GetActivity(id)
	require.Nil(t, err)
	assert.NotContains(t, got.Meta, "seen")
}

func TestRemoveActivity(t *testing.T) {

	repo := newTestRepo(t)

	id := "https://stardust.community/act/gone"
	_, err := repo.SaveActivity(&StoredActivity{Id: id, Payload: map[string]any{"a": 1}})
	require.Nil(t, err)

	require.Nil(t, repo.RemoveActivity(id))
	got, err := repo.GetActivity(id)
	require.Nil(t, err)
	assert.Nil(t, got)

	// Removing again is a no-op
	require.Nil(t, repo.RemoveActivity(id))
}

func saveStreamActivity(t *testing.T, repo IRepo, id, actor, published string) {
	_, err := repo.SaveActivity(&StoredActivity{Id: id, Payload: map[string]any{
		"actor":     actor,
		"published": published,
	}})
	require.Nil(t, err)
}

func TestGetStream(t *testing.T) {

	repo := newTestRepo(t)

	pixie := "https://stardust.community/u/pixie"
	grump := "https://grumpy.example/u/grump"
	saveStreamActivity(t, repo, "https://x.example/act/1", pixie, "2026-01-01T00:00:00Z")
	saveStreamActivity(t, repo, "https://x.example/act/2", grump, "2026-01-02T00:00:00Z")
	saveStreamActivity(t, repo, "https://x.example/act/3", pixie, "2026-01-03T00:00:00Z")
	saveStreamActivity(t, repo, "https://x.example/act/4", pixie, "2026-01-04T00:00:00Z")

	// Newest first, truncated
	acts, err := repo.GetStream("", 2, "", nil, nil)
	require.Nil(t, err)
	require.Equal(t, 2, len(acts))
	assert.Equal(t, "https://x.example/act/4", acts[0].Id)
	assert.Equal(t, "https://x.example/act/3", acts[1].Id)

	// Cursor resumes after the exact id
	acts, err = repo.GetStream("", 0, "https://x.example/act/3", nil, nil)
	require.Nil(t, err)
	require.Equal(t, 2, len(acts))
	assert.Equal(t, "https://x.example/act/2", acts[0].Id)
	assert.Equal(t, "https://x.example/act/1", acts[1].Id)

	// Unknown cursor is ignored
	acts, err = repo.GetStream("", 0, "https://x.example/act/nope", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, 4, len(acts))

	// Block-listed actors are filtered out before the limit applies
	acts, err = repo.GetStream("", 3, "", []string{pixie}, nil)
	require.Nil(t, err)
	require.Equal(t, 1, len(acts))
	assert.Equal(t, "https://x.example/act/2", acts[0].Id)

	count, err := repo.GetStreamCount("")
	require.Nil(t, err)
	assert.Equal(t, 4, count)
}

func TestUnsupportedStoreOps(t *testing.T) {

	repo := newTestRepo(t)

	err := repo.QueueForDelivery(&StoredActivity{Id: "x"}, "https://y.example/inbox")
	assert.True(t, errors.Is(err, ErrNotImplemented))
	_, err = repo.DequeueDelivery()
	assert.True(t, errors.Is(err, ErrNotImplemented))
	err = repo.RequeueDelivery(&StoredActivity{Id: "x"})
	assert.True(t, errors.Is(err, ErrNotImplemented))
	_, err = repo.GetActivitiesByObject("", "x")
	assert.True(t, errors.Is(err, ErrNotImplemented))
	_, err = repo.GetActivitiesByActor("", "x")
	assert.True(t, errors.Is(err, ErrNotImplemented))
	_, err = repo.GetUserCount()
	assert.True(t, errors.Is(err, ErrNotImplemented))
}

func TestObjectKeyCollision(t *testing.T) {

	repo := newTestRepo(t)

	// Ids differing only in their separators share one storage key
	idColon := "https://stardust.community/objects:123"
	idSlash := "https://stardust.community/objects/123"

	_, err := repo.SaveObject(&StoredObject{Id: idColon, Payload: map[string]any{"v": "first"}})
	require.Nil(t, err)
	_, err = repo.SaveObject(&StoredObject{Id: idSlash, Payload: map[string]any{"v": "second"}})
	require.Nil(t, err)

	// Later save overwrote the payload; the stored id is the first writer's
	got, err := repo.GetObject(idColon)
	require.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Payload["v"])
	assert.Equal(t, idColon, got.Id)

	got, err = repo.GetObject(idSlash)
	require.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Payload["v"])
	assert.Equal(t, idColon, got.Id)
}
