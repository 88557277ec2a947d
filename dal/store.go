package dal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// IStore is the object/activity store: two independent key->document
// namespaces plus a best-effort reverse-chronological stream query.
//
// Lookup misses are nil results, not errors. UpdateActivityMeta on an absent
// activity is a silent no-op; callers rely on fire-and-forget semantics.
// Delivery queueing and collection-scoped lookups are deliberately
// unsupported and fail with ErrNotImplemented.
type IStore interface {
	GetObject(id string) (*StoredObject, error)
	SaveObject(obj *StoredObject) (*StoredObject, error)
	GetActivity(id string) (*StoredActivity, error)
	SaveActivity(act *StoredActivity) (*StoredActivity, error)
	UpdateActivity(act *StoredActivity, fullReplace bool) error
	UpdateActivityMeta(id, key string, value any, remove bool) error
	RemoveActivity(id string) error
	GetStream(collectionId string, limit int, after string, blockList []string, query map[string]any) ([]*StoredActivity, error)
	GetStreamCount(collectionId string) (int, error)

	// Unsupported operations
	QueueForDelivery(act *StoredActivity, inboxUrl string) error
	DequeueDelivery() (*StoredActivity, error)
	RequeueDelivery(act *StoredActivity) error
	GetActivitiesByObject(collectionId, objectId string) ([]*StoredActivity, error)
	GetActivitiesByActor(collectionId, actorId string) ([]*StoredActivity, error)
	GetUserCount() (int, error)
}

// Characters with structural meaning in identifiers get a fixed placeholder
// so any IRI fits the storage's key constraints. Applied on every read and
// write path; round-trip lookups depend on it.
const keySeparators = ":/?#[]@"

// Every separator maps to the same placeholder, so ids that differ only in
// their separators (a:b vs a/b) collide on one storage key: the later save
// overwrites the earlier payload, and the stored id stays from the first
// write. Real-world IRIs do not collide this way.
func normalizeKey(id string) string {
	var b strings.Builder
	for _, r := range id {
		if strings.ContainsRune(keySeparators, r) {
			b.WriteByte('~')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func marshalDoc(doc map[string]any) (string, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	bytes, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func unmarshalDoc(str string) (map[string]any, error) {
	res := map[string]any{}
	if str == "" {
		return res, nil
	}
	if err := json.Unmarshal([]byte(str), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Actor and publish time come out of the payload when present; publish time
// falls back to the record's own creation time.
func derivedFields(payload map[string]any, createdAt time.Time) (actor string, published time.Time) {
	published = createdAt
	if payload == nil {
		return
	}
	if str, ok := payload["actor"].(string); ok {
		actor = str
	}
	if str, ok := payload["published"].(string); ok {
		if t, err := time.Parse(time.RFC3339, str); err == nil {
			published = t
		}
	}
	return
}

func (repo *Repo) GetObject(id string) (*StoredObject, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT obj_id, payload, created_at FROM objects WHERE key=?`,
		normalizeKey(id))
	var res StoredObject
	var payloadStr string
	err := row.Scan(&res.Id, &payloadStr, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if res.Payload, err = unmarshalDoc(payloadStr); err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) SaveObject(obj *StoredObject) (*StoredObject, error) {

	if obj.Id == "" {
		return nil, fmt.Errorf("%w: object is missing an id", ErrInvalidArgument)
	}

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	payloadStr, err := marshalDoc(obj.Payload)
	if err != nil {
		return nil, err
	}
	if obj.CreatedAt.IsZero() {
		obj.CreatedAt = time.Now().UTC()
	}
	// created_at stays at first write; the id is immutable by keying
	_, err = repo.db.Exec(`INSERT INTO objects (key, obj_id, payload, created_at)
		VALUES(?, ?, ?, ?)
		ON CONFLICT DO UPDATE SET payload=excluded.payload`,
		normalizeKey(obj.Id), obj.Id, payloadStr, obj.CreatedAt)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (repo *Repo) GetActivity(id string) (*StoredActivity, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getActivity(id)
}

func (repo *Repo) getActivity(id string) (*StoredActivity, error) {

	row := repo.db.QueryRow(`SELECT act_id, actor, published, payload, meta, created_at
		FROM activities WHERE key=?`, normalizeKey(id))
	var res StoredActivity
	var payloadStr, metaStr string
	err := row.Scan(&res.Id, &res.Actor, &res.Published, &payloadStr, &metaStr, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if res.Payload, err = unmarshalDoc(payloadStr); err != nil {
		return nil, err
	}
	if res.Meta, err = unmarshalDoc(metaStr); err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) SaveActivity(act *StoredActivity) (*StoredActivity, error) {

	if act.Id == "" {
		return nil, fmt.Errorf("%w: activity is missing an id", ErrInvalidArgument)
	}

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	return repo.saveActivity(act)
}

func (repo *Repo) saveActivity(act *StoredActivity) (*StoredActivity, error) {

	payloadStr, err := marshalDoc(act.Payload)
	if err != nil {
		return nil, err
	}
	metaStr, err := marshalDoc(act.Meta)
	if err != nil {
		return nil, err
	}
	if act.CreatedAt.IsZero() {
		act.CreatedAt = time.Now().UTC()
	}
	act.Actor, act.Published = derivedFields(act.Payload, act.CreatedAt)
	_, err = repo.db.Exec(`INSERT INTO activities (key, act_id, actor, published, payload, meta, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO UPDATE SET actor=excluded.actor, published=excluded.published,
			payload=excluded.payload, meta=excluded.meta`,
		normalizeKey(act.Id), act.Id, act.Actor, act.Published, payloadStr, metaStr, act.CreatedAt)
	if err != nil {
		return nil, err
	}
	return act, nil
}

// UpdateActivity overwrites the stored payload when fullReplace is set, and
// shallow-merges top-level fields into it otherwise. Updating an activity
// that was never stored falls back to a plain save.
func (repo *Repo) UpdateActivity(act *StoredActivity, fullReplace bool) error {

	if act.Id == "" {
		return fmt.Errorf("%w: activity is missing an id", ErrInvalidArgument)
	}

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	existing, err := repo.getActivity(act.Id)
	if err != nil {
		return err
	}

	if existing == nil || fullReplace {
		_, err = repo.saveActivity(act)
		return err
	}

	for k, v := range act.Payload {
		existing.Payload[k] = v
	}
	_, err = repo.saveActivity(existing)
	return err
}

// UpdateActivityMeta sets or removes a single meta entry. Nothing happens,
// and no error is reported, when the activity does not exist.
func (repo *Repo) UpdateActivityMeta(id, key string, value any, remove bool) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	existing, err := repo.getActivity(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	if remove {
		delete(existing.Meta, key)
	} else {
		existing.Meta[key] = value
	}

	metaStr, err := marshalDoc(existing.Meta)
	if err != nil {
		return err
	}
	_, err = repo.db.Exec(`UPDATE activities SET meta=? WHERE key=?`, metaStr, normalizeKey(id))
	return err
}

// RemoveActivity deletes by id; removing an absent activity is a no-op.
func (repo *Repo) RemoveActivity(id string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM activities WHERE key=?`, normalizeKey(id))
	return err
}

// GetStream returns stored activities sorted by descending publish time,
// resumed after the given activity id when present, excluding activities by
// block-listed actors, truncated to limit (non-positive limit means all).
//
// collectionId and query take no part in filtering: the store keeps a single
// global activity stream. The arguments stay so the contract matches what
// collection-serving callers pass.
func (repo *Repo) GetStream(collectionId string, limit int, after string, blockList []string, query map[string]any) ([]*StoredActivity, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT act_id, actor, published, payload, meta, created_at
		FROM activities ORDER BY published DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := make([]*StoredActivity, 0)
	for rows.Next() {
		var act StoredActivity
		var payloadStr, metaStr string
		err = rows.Scan(&act.Id, &act.Actor, &act.Published, &payloadStr, &metaStr, &act.CreatedAt)
		if err != nil {
			return nil, err
		}
		if act.Payload, err = unmarshalDoc(payloadStr); err != nil {
			return nil, err
		}
		if act.Meta, err = unmarshalDoc(metaStr); err != nil {
			return nil, err
		}
		all = append(all, &act)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Cursor is an exact id match; an unknown cursor is ignored
	if after != "" {
		for i, act := range all {
			if act.Id == after {
				all = all[i+1:]
				break
			}
		}
	}

	blocked := make(map[string]struct{}, len(blockList))
	for _, actor := range blockList {
		blocked[actor] = struct{}{}
	}

	res := make([]*StoredActivity, 0)
	for _, act := range all {
		if _, isBlocked := blocked[act.Actor]; isBlocked {
			continue
		}
		res = append(res, act)
		if limit > 0 && len(res) == limit {
			break
		}
	}
	return res, nil
}

// GetStreamCount counts all stored activities; like GetStream, it does not
// filter by collection.
func (repo *Repo) GetStreamCount(collectionId string) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM activities`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) QueueForDelivery(act *StoredActivity, inboxUrl string) error {
	return fmt.Errorf("%w: store-level delivery queueing", ErrNotImplemented)
}

func (repo *Repo) DequeueDelivery() (*StoredActivity, error) {
	return nil, fmt.Errorf("%w: store-level delivery queueing", ErrNotImplemented)
}

func (repo *Repo) RequeueDelivery(act *StoredActivity) error {
	return fmt.Errorf("%w: store-level delivery queueing", ErrNotImplemented)
}

func (repo *Repo) GetActivitiesByObject(collectionId, objectId string) ([]*StoredActivity, error) {
	return nil, fmt.Errorf("%w: collection-scoped activity lookup", ErrNotImplemented)
}

func (repo *Repo) GetActivitiesByActor(collectionId, actorId string) ([]*StoredActivity, error) {
	return nil, fmt.Errorf("%w: collection-scoped activity lookup", ErrNotImplemented)
}

func (repo *Repo) GetUserCount() (int, error) {
	return 0, fmt.Errorf("%w: user count", ErrNotImplemented)
}
