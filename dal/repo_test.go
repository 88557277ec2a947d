package dal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestAccount(t *testing.T, repo IRepo, handle string) *Account {
	acct := Account{
		CreatedAt: time.Now().UTC(),
		UserUrl:   fmt.Sprintf("https://test.host/u/%s", handle),
		Handle:    handle,
		Name:      handle,
		PubKey:    "pub-" + handle,
	}
	isNew, err := repo.AddAccountIfNotExist(&acct, "priv-"+handle)
	require.Nil(t, err)
	require.True(t, isNew)
	res, err := repo.GetAccount(handle)
	require.Nil(t, err)
	require.NotNil(t, res)
	return res
}

func makeFollower(userUrl string) *FollowerInfo {
	return &FollowerInfo{
		RequestId: userUrl + "/follow/1",
		UserUrl:   userUrl,
		Host:      "stardust.community",
		UserInbox: userUrl + "/inbox",
	}
}

func TestAddAccountIfNotExist(t *testing.T) {

	repo := newTestRepo(t)

	addTestAccount(t, repo, "pixie")

	dup := Account{
		CreatedAt: time.Now().UTC(),
		UserUrl:   "https://test.host/u/pixie",
		Handle:    "pixie",
	}
	isNew, err := repo.AddAccountIfNotExist(&dup, "")
	require.Nil(t, err)
	assert.False(t, isNew)

	exists, err := repo.DoesAccountExist("pixie")
	require.Nil(t, err)
	assert.True(t, exists)
	exists, err = repo.DoesAccountExist("nobody")
	require.Nil(t, err)
	assert.False(t, exists)
}

func TestFollowerLedger(t *testing.T) {

	repo := newTestRepo(t)
	addTestAccount(t, repo, "pixie")

	alice := "https://stardust.community/u/alice"
	bob := "https://stardust.community/u/bob"

	// Empty ledger is an empty slice, not nil
	followers, err := repo.GetFollowers("pixie")
	require.Nil(t, err)
	require.NotNil(t, followers)
	assert.Equal(t, 0, len(followers))

	require.Nil(t, repo.AddFollower("pixie", makeFollower(alice)))
	require.Nil(t, repo.AddFollower("pixie", makeFollower(bob)))

	// Follow order is insertion order
	followers, err = repo.GetFollowers("pixie")
	require.Nil(t, err)
	require.Equal(t, 2, len(followers))
	assert.Equal(t, alice, followers[0].UserUrl)
	assert.Equal(t, bob, followers[1].UserUrl)

	// Re-follow is a no-op
	require.Nil(t, repo.AddFollower("pixie", makeFollower(alice)))
	followers, err = repo.GetFollowers("pixie")
	require.Nil(t, err)
	assert.Equal(t, 2, len(followers))

	count, err := repo.GetFollowerCount("pixie")
	require.Nil(t, err)
	assert.Equal(t, uint(2), count)

	require.Nil(t, repo.RemoveFollower("pixie", alice))
	followers, err = repo.GetFollowers("pixie")
	require.Nil(t, err)
	require.Equal(t, 1, len(followers))
	assert.Equal(t, bob, followers[0].UserUrl)

	// Removing an actor that never followed changes nothing
	require.Nil(t, repo.RemoveFollower("pixie", "https://nowhere.example/u/ghost"))
	followers, err = repo.GetFollowers("pixie")
	require.Nil(t, err)
	assert.Equal(t, 1, len(followers))
}

func addTestPost(t *testing.T, repo IRepo, acct *Account, statusId, inReplyTo string, published time.Time) *Post {
	post := Post{
		StatusId:  statusId,
		Content:   "content of " + statusId,
		Published: published,
		InReplyTo: inReplyTo,
	}
	require.Nil(t, repo.AddPost(acct.Id, &post))
	res, err := repo.GetPostByStatusId(statusId)
	require.Nil(t, err)
	require.NotNil(t, res)
	return res
}

func TestReactionRanking(t *testing.T) {

	repo := newTestRepo(t)
	acct := addTestAccount(t, repo, "pixie")

	now := time.Now().UTC()
	p1 := addTestPost(t, repo, acct, "https://test.host/u/pixie/status/1", "", now)
	p2 := addTestPost(t, repo, acct, "https://test.host/u/pixie/status/2", "", now.Add(time.Minute))
	p3 := addTestPost(t, repo, acct, "https://test.host/u/pixie/status/3", "", now.Add(2*time.Minute))

	require.Nil(t, repo.SetReaction(p2.Id, "alice", 1, now))
	require.Nil(t, repo.SetReaction(p2.Id, "bob", 1, now))
	require.Nil(t, repo.SetReaction(p3.Id, "alice", 1, now))
	require.Nil(t, repo.SetReaction(p1.Id, "alice", -1, now))

	top, err := repo.GetTopPosts(10)
	require.Nil(t, err)
	require.Equal(t, 3, len(top))
	assert.Equal(t, p2.StatusId, top[0].StatusId)
	assert.Equal(t, 2, top[0].Score)
	assert.Equal(t, p3.StatusId, top[1].StatusId)
	assert.Equal(t, p1.StatusId, top[2].StatusId)
	assert.Equal(t, -1, top[2].Score)

	// One reaction per reactor per post; a change replaces the old value
	require.Nil(t, repo.SetReaction(p2.Id, "alice", -1, now.Add(time.Minute)))
	got, err := repo.GetPostByStatusId(p2.StatusId)
	require.Nil(t, err)
	assert.Equal(t, 0, got.Score)
}

func TestReplies(t *testing.T) {

	repo := newTestRepo(t)
	acct := addTestAccount(t, repo, "pixie")

	now := time.Now().UTC()
	root := addTestPost(t, repo, acct, "https://test.host/u/pixie/status/10", "", now)
	addTestPost(t, repo, acct, "https://test.host/u/pixie/status/12", root.StatusId, now.Add(2*time.Minute))
	addTestPost(t, repo, acct, "https://test.host/u/pixie/status/11", root.StatusId, now.Add(time.Minute))
	addTestPost(t, repo, acct, "https://test.host/u/pixie/status/13", "", now.Add(3*time.Minute))

	// Oldest reply first
	replies, err := repo.GetReplies(root.StatusId)
	require.Nil(t, err)
	require.Equal(t, 2, len(replies))
	assert.Equal(t, "https://test.host/u/pixie/status/11", replies[0].StatusId)
	assert.Equal(t, "https://test.host/u/pixie/status/12", replies[1].StatusId)

	replies, err = repo.GetReplies("https://test.host/u/pixie/status/13")
	require.Nil(t, err)
	assert.Equal(t, 0, len(replies))
}

func TestMarkActivityHandled(t *testing.T) {

	repo := newTestRepo(t)

	id := "https://stardust.community/act/once"
	already, err := repo.MarkActivityHandled(id, time.Now().UTC())
	require.Nil(t, err)
	assert.False(t, already)

	already, err = repo.MarkActivityHandled(id, time.Now().UTC())
	require.Nil(t, err)
	assert.True(t, already)
}

func TestDeliveryQueue(t *testing.T) {

	repo := newTestRepo(t)

	for i := 1; i <= 3; i++ {
		item := DeliveryQueueItem{
			SendingUser: "pixie",
			ToInbox:     fmt.Sprintf("https://remote%d.example/inbox", i),
			Published:   time.Now().UTC(),
			StatusId:    "https://test.host/u/pixie/status/1",
			Content:     "henlo",
		}
		require.Nil(t, repo.AddQueueItem(&item))
	}

	items, qlen, err := repo.GetQueueItems(0, 2)
	require.Nil(t, err)
	assert.Equal(t, 2, len(items))
	assert.Equal(t, 3, qlen)

	require.Nil(t, repo.DeleteQueueItem(items[0].Id))
	items, qlen, err = repo.GetQueueItems(0, 10)
	require.Nil(t, err)
	assert.Equal(t, 2, len(items))
	assert.Equal(t, 2, qlen)
}

func TestFeedPostDedupe(t *testing.T) {

	repo := newTestRepo(t)
	acct := addTestAccount(t, repo, "blog.example.com")

	fp := FeedPost{
		PostGuidHash: 42424242,
		PostTime:     time.Now().UTC(),
		Link:         "https://blog.example.com/hello",
		Title:        "Hello",
	}
	isNew, err := repo.AddFeedPostIfNew(acct.Id, &fp)
	require.Nil(t, err)
	assert.True(t, isNew)

	// Same guid hash again: not new
	isNew, err = repo.AddFeedPostIfNew(acct.Id, &fp)
	require.Nil(t, err)
	assert.False(t, isNew)

	// Different item is new
	fp2 := fp
	fp2.PostGuidHash = 43434343
	isNew, err = repo.AddFeedPostIfNew(acct.Id, &fp2)
	require.Nil(t, err)
	assert.True(t, isNew)
}
