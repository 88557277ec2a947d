package dto

import "time"

type NewUserReq struct {
	Handle  string `json:"handle"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

type NewPostReq struct {
	Author    string `json:"author"`
	Content   string `json:"content"`
	InReplyTo string `json:"in_reply_to,omitempty"`
}

type PostResp struct {
	StatusId  string    `json:"status_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Published time.Time `json:"published"`
	InReplyTo string    `json:"in_reply_to,omitempty"`
	Score     int       `json:"score"`
}

type ThreadResp struct {
	Root    *PostResp   `json:"root"`
	Replies []*PostResp `json:"replies"`
}

type ReactionReq struct {
	Reactor string `json:"reactor"`
	Value   int    `json:"value"` // +1 like, -1 dislike
}

type NewBridgeFeedReq struct {
	SiteUrl string `json:"site_url"`
}

type BridgeFeedResp struct {
	Handle  string `json:"handle"`
	Name    string `json:"name"`
	FeedUrl string `json:"feed_url"`
	UserUrl string `json:"user_url"`
	IsNew   bool   `json:"is_new"`
}
