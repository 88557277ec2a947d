package logic

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"warble/dal"
	"warble/dto"
	"warble/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_publisher.go -package mocks warble/logic IPublisher

// IPublisher creates local posts and serves ranked listings and threads.
type IPublisher interface {
	CreatePost(author, content, inReplyTo string) (*dto.PostResp, error)
	GetThread(statusId string) (*dto.ThreadResp, error)
	GetTopPosts(limit int) ([]*dto.PostResp, error)
	React(statusId, reactor string, value int) error
}

type publisher struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	messenger IMessenger
	metrics   IMetrics
	idb       shared.IdBuilder
	sanitizer *bluemonday.Policy
}

func NewPublisher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	messenger IMessenger,
	metrics IMetrics,
) IPublisher {
	return &publisher{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		messenger: messenger,
		metrics:   metrics,
		idb:       shared.IdBuilder{Host: cfg.Host},
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (pub *publisher) CreatePost(author, content, inReplyTo string) (*dto.PostResp, error) {

	author = strings.ToLower(author)
	acct, err := pub.repo.GetAccount(author)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, fmt.Errorf("no such user: %s", author)
	}

	if inReplyTo != "" {
		parent, err := pub.repo.GetPostByStatusId(inReplyTo)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("no such post to reply to: %s", inReplyTo)
		}
	}

	content = pub.sanitizer.Sanitize(content)
	published := time.Now().UTC()
	statusId := pub.idb.UserStatus(author, pub.repo.GetNextId())

	post := dal.Post{
		StatusId:  statusId,
		Content:   content,
		Published: published,
		InReplyTo: inReplyTo,
	}
	if err = pub.repo.AddPost(acct.Id, &post); err != nil {
		return nil, err
	}
	pub.metrics.PostCreated()

	pub.recordInStore(author, statusId, content, inReplyTo, published)

	if err = pub.messenger.EnqueueBroadcast(author, statusId, published, content); err != nil {
		pub.logger.Errorf("Failed to enqueue broadcast of %s: %v", statusId, err)
	}

	return postToResp(author, &post), nil
}

// Mirrors a new post into the object/activity store so the federated record
// of the Note and its Create survive independently of the posts table.
func (pub *publisher) recordInStore(author, statusId, content, inReplyTo string, published time.Time) {

	publishedStr := published.Format(time.RFC3339)
	userUrl := pub.idb.UserUrl(author)

	note := map[string]any{
		"id":           statusId,
		"type":         "Note",
		"attributedTo": userUrl,
		"content":      content,
		"published":    publishedStr,
	}
	if inReplyTo != "" {
		note["inReplyTo"] = inReplyTo
	}
	if _, err := pub.repo.SaveObject(&dal.StoredObject{Id: statusId, Payload: note}); err != nil {
		pub.logger.Errorf("Failed to store note object %s: %v", statusId, err)
	}

	activityId := statusId + "/activity"
	create := map[string]any{
		"id":        activityId,
		"type":      "Create",
		"actor":     userUrl,
		"object":    note,
		"published": publishedStr,
	}
	if _, err := pub.repo.SaveActivity(&dal.StoredActivity{Id: activityId, Payload: create}); err != nil {
		pub.logger.Errorf("Failed to store create activity %s: %v", activityId, err)
	}
}

func (pub *publisher) GetThread(statusId string) (*dto.ThreadResp, error) {

	root, err := pub.repo.GetPostByStatusId(statusId)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}

	replies, err := pub.repo.GetReplies(statusId)
	if err != nil {
		return nil, err
	}

	res := dto.ThreadResp{
		Root:    postToResp("", root),
		Replies: make([]*dto.PostResp, 0, len(replies)),
	}
	for _, p := range replies {
		res.Replies = append(res.Replies, postToResp("", p))
	}
	return &res, nil
}

func (pub *publisher) GetTopPosts(limit int) ([]*dto.PostResp, error) {

	if limit <= 0 {
		limit = pub.cfg.StreamPageSize
	}
	posts, err := pub.repo.GetTopPosts(limit)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PostResp, 0, len(posts))
	for _, p := range posts {
		res = append(res, postToResp("", p))
	}
	return res, nil
}

func (pub *publisher) React(statusId, reactor string, value int) error {

	if value != 1 && value != -1 {
		return fmt.Errorf("reaction value must be +1 or -1, got %d", value)
	}
	post, err := pub.repo.GetPostByStatusId(statusId)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("no such post: %s", statusId)
	}
	if err = pub.repo.SetReaction(post.Id, reactor, value, time.Now().UTC()); err != nil {
		return err
	}
	pub.metrics.ReactionRecorded()
	return nil
}

func postToResp(author string, p *dal.Post) *dto.PostResp {
	return &dto.PostResp{
		StatusId:  p.StatusId,
		Author:    author,
		Content:   p.Content,
		Published: p.Published,
		InReplyTo: p.InReplyTo,
		Score:     p.Score,
	}
}
