package dal

import (
	"time"
)

type Account struct {
	Id              int
	CreatedAt       time.Time
	UserUrl         string // https://warble.example.com/u/alice
	Handle          string // alice
	Name            string
	Summary         string
	ProfileImageUrl string
	HeaderImageUrl  string
	SiteUrl         string // non-empty for bridge accounts only
	FeedUrl         string // non-empty for bridge accounts only
	FeedLastUpdated time.Time
	NextCheckDue    time.Time
	PubKey          string
}

type FollowerInfo struct {
	RequestId   string // ID of the follow request activity; needed for the Accept reply
	UserUrl     string // https://genart.social/users/twilliability
	Handle      string // twilliability
	Host        string // genart.social
	UserInbox   string // https://genart.social/users/twilliability/inbox
	SharedInbox string // https://genart.social/inbox
}

type Post struct {
	Id        int
	AccountId int
	StatusId  string // the post's federated IRI
	Content   string // sanitized HTML
	Published time.Time
	InReplyTo string // status IRI of the parent; empty for top-level posts
	Score     int    // likes minus dislikes; filled on read
}

type Reaction struct {
	PostId    int
	Reactor   string // actor IRI or local handle
	Value     int    // +1 or -1
	ReactedAt time.Time
}

// One row per bridged feed item ever seen; dedupe by guid hash.
type FeedPost struct {
	PostGuidHash int64
	PostTime     time.Time
	Link         string
	Title        string
}

type DeliveryQueueItem struct {
	Id          int
	SendingUser string
	ToInbox     string
	Published   time.Time
	StatusId    string
	Content     string
}

// StoredObject is a federated object recorded in the store's object
// namespace. Id is immutable once set.
type StoredObject struct {
	Id        string
	Payload   map[string]any
	CreatedAt time.Time
}

// StoredActivity is a federated activity in the store's activity namespace.
// Actor and Published are derived from the payload when saving and kept as
// columns so the stream query can sort and filter without re-parsing.
type StoredActivity struct {
	Id        string
	Payload   map[string]any
	Meta      map[string]any
	Actor     string
	Published time.Time
	CreatedAt time.Time
}
