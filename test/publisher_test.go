package test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"warble/dal"
	"warble/logic"
	"warble/shared"
	"warble/test/mocks"
)

type publisherHarness struct {
	cfg           *shared.Config
	mockLogger    *mocks.MockILogger
	mockRepo      *mocks.MockIRepo
	mockMetrics   *mocks.MockIMetrics
	mockMessenger *mocks.MockIMessenger
}

func setupPublisherTest(t *testing.T) (*gomock.Controller, *publisherHarness, logic.IPublisher) {

	ctrl := gomock.NewController(t)

	h := &publisherHarness{
		cfg: &shared.Config{
			Host:           localHost,
			StreamPageSize: 40,
		},
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockRepo:      mocks.NewMockIRepo(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
		mockMessenger: mocks.NewMockIMessenger(ctrl),
	}

	setupDummyLogger(h.mockLogger)

	pub := logic.NewPublisher(h.cfg, h.mockLogger, h.mockRepo, h.mockMessenger, h.mockMetrics)

	return ctrl, h, pub
}

func TestPublisher_CreatePost(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 7, Handle: "pixie", UserUrl: fmt.Sprintf("https://%s/u/pixie", localHost)}
	var statusId string

	h.mockRepo.EXPECT().GetAccount("pixie").Return(acct, nil)
	h.mockRepo.EXPECT().GetNextId().Return(uint64(42))
	h.mockRepo.EXPECT().AddPost(7, gomock.Any()).
		DoAndReturn(func(accountId int, post *dal.Post) error {
			statusId = post.StatusId
			assert.Equal(t, fmt.Sprintf("https://%s/u/pixie/status/42", localHost), post.StatusId)
			assert.Equal(t, "", post.InReplyTo)
			return nil
		})
	h.mockMetrics.EXPECT().PostCreated()
	h.mockRepo.EXPECT().SaveObject(gomock.Any()).
		DoAndReturn(func(obj *dal.StoredObject) (*dal.StoredObject, error) {
			assert.Equal(t, statusId, obj.Id)
			assert.Equal(t, "Note", obj.Payload["type"])
			return obj, nil
		})
	h.mockRepo.EXPECT().SaveActivity(gomock.Any()).
		DoAndReturn(func(act *dal.StoredActivity) (*dal.StoredActivity, error) {
			assert.Equal(t, statusId+"/activity", act.Id)
			assert.Equal(t, "Create", act.Payload["type"])
			return act, nil
		})
	h.mockMessenger.EXPECT().EnqueueBroadcast("pixie", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := pub.CreatePost("pixie", "<p>henlo world</p>", "")
	require.Nil(t, err)
	assert.Equal(t, statusId, resp.StatusId)
	assert.Equal(t, "pixie", resp.Author)
}

func TestPublisher_CreatePost_SanitizesContent(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 7, Handle: "pixie"}

	h.mockRepo.EXPECT().GetAccount("pixie").Return(acct, nil)
	h.mockRepo.EXPECT().GetNextId().Return(uint64(43))
	h.mockRepo.EXPECT().AddPost(7, gomock.Any()).
		DoAndReturn(func(accountId int, post *dal.Post) error {
			assert.False(t, strings.Contains(post.Content, "<script"))
			assert.True(t, strings.Contains(post.Content, "henlo"))
			return nil
		})
	h.mockMetrics.EXPECT().PostCreated()
	h.mockRepo.EXPECT().SaveObject(gomock.Any()).Return(nil, nil)
	h.mockRepo.EXPECT().SaveActivity(gomock.Any()).Return(nil, nil)
	h.mockMessenger.EXPECT().EnqueueBroadcast("pixie", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := pub.CreatePost("pixie", `<p>henlo</p><script>alert(1)</script>`, "")
	require.Nil(t, err)
}

func TestPublisher_CreatePost_UnknownAuthor(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetAccount("nobody").Return(nil, nil)

	_, err := pub.CreatePost("nobody", "henlo", "")
	assert.NotNil(t, err)
}

func TestPublisher_CreatePost_MissingReplyParent(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 7, Handle: "pixie"}
	parentId := fmt.Sprintf("https://%s/u/pixie/status/1", localHost)

	h.mockRepo.EXPECT().GetAccount("pixie").Return(acct, nil)
	h.mockRepo.EXPECT().GetPostByStatusId(parentId).Return(nil, nil)

	_, err := pub.CreatePost("pixie", "henlo", parentId)
	assert.NotNil(t, err)
}

func TestPublisher_GetThread(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	rootId := fmt.Sprintf("https://%s/u/pixie/status/1", localHost)
	now := time.Now().UTC()
	root := &dal.Post{Id: 1, StatusId: rootId, Content: "root", Published: now, Score: 3}
	replies := []*dal.Post{
		{Id: 2, StatusId: rootId + "1", Content: "first", Published: now.Add(time.Minute), InReplyTo: rootId},
		{Id: 3, StatusId: rootId + "2", Content: "second", Published: now.Add(2 * time.Minute), InReplyTo: rootId},
	}

	h.mockRepo.EXPECT().GetPostByStatusId(rootId).Return(root, nil)
	h.mockRepo.EXPECT().GetReplies(rootId).Return(replies, nil)

	thread, err := pub.GetThread(rootId)
	require.Nil(t, err)
	require.NotNil(t, thread)
	assert.Equal(t, rootId, thread.Root.StatusId)
	assert.Equal(t, 3, thread.Root.Score)
	require.Equal(t, 2, len(thread.Replies))
	assert.Equal(t, "first", thread.Replies[0].Content)

	// Unknown root: nil thread, no error
	h.mockRepo.EXPECT().GetPostByStatusId("https://nope.example/status/0").Return(nil, nil)
	thread, err = pub.GetThread("https://nope.example/status/0")
	require.Nil(t, err)
	assert.Nil(t, thread)
}

func TestPublisher_React(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	statusId := fmt.Sprintf("https://%s/u/pixie/status/1", localHost)
	post := &dal.Post{Id: 5, StatusId: statusId}

	h.mockRepo.EXPECT().GetPostByStatusId(statusId).Return(post, nil)
	h.mockRepo.EXPECT().SetReaction(5, "alice", 1, gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().ReactionRecorded()

	require.Nil(t, pub.React(statusId, "alice", 1))

	// Only +1 and -1 are valid
	err := pub.React(statusId, "alice", 2)
	assert.NotNil(t, err)
	err = pub.React(statusId, "alice", 0)
	assert.NotNil(t, err)
}

func TestPublisher_React_UnknownPost(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	statusId := fmt.Sprintf("https://%s/u/pixie/status/99", localHost)
	h.mockRepo.EXPECT().GetPostByStatusId(statusId).Return(nil, nil)

	err := pub.React(statusId, "alice", -1)
	assert.NotNil(t, err)
}
