package test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"warble/dal"
	"warble/dto"
	"warble/logic"
	"warble/shared"
	"warble/test/mocks"
)

const localHost = "warble.example"
const callerHost = "stardust.community"
const callerName = "alice"

type inboxHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockRepo    *mocks.MockIRepo
	mockMetrics *mocks.MockIMetrics
	mockUDir    *mocks.MockIUserDirectory
	sender      *dto.UserInfo
}

func setupInboxTest(t *testing.T) (*gomock.Controller, *inboxHarness, logic.IInbox) {

	ctrl := gomock.NewController(t)

	h := &inboxHarness{
		cfg: &shared.Config{
			Host: localHost,
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		mockUDir:    mocks.NewMockIUserDirectory(ctrl),
		sender:      makeCallerUserInfo(callerHost, callerName),
	}

	setupDummyLogger(h.mockLogger)

	inbox := logic.NewInbox(h.cfg, h.mockLogger, h.mockRepo, h.mockUDir, h.mockMetrics)

	return ctrl, h, inbox
}

func makeCallerUserInfo(host, name string) *dto.UserInfo {
	userUrl := fmt.Sprintf("https://%s/users/%s", host, name)
	return &dto.UserInfo{
		Id:                userUrl,
		PreferredUserName: name,
		Inbox:             userUrl + "/inbox",
		Endpoints:         dto.UserEndpoints{SharedInbox: fmt.Sprintf("https://%s/inbox", host)},
	}
}

func makeFollowActivity(actId, actorUrl, objectUrl string) []byte {
	act := fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": %q,
		"type": "Follow",
		"actor": %q,
		"object": %q
	}`, actId, actorUrl, objectUrl)
	return []byte(act)
}

func makeUndoFollowActivity(actId, actorUrl, followId, objectUrl string) []byte {
	act := fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": %q,
		"type": "Undo",
		"actor": %q,
		"object": {
			"id": %q,
			"type": "Follow",
			"actor": %q,
			"object": %q
		}
	}`, actId, actorUrl, followId, actorUrl, objectUrl)
	return []byte(act)
}

func TestInbox_Follow_AddsFollower(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := fmt.Sprintf("https://%s/act/1", callerHost)
	pixieUrl := fmt.Sprintf("https://%s/u/pixie", localHost)
	body := makeFollowActivity(actId, h.sender.Id, pixieUrl)

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SaveActivity(gomock.Any()).Return(nil, nil)
	h.mockRepo.EXPECT().DoesAccountExist("pixie").Return(true, nil)
	h.mockRepo.EXPECT().AddFollower("pixie", gomock.Any()).
		DoAndReturn(func(user string, flwr *dal.FollowerInfo) error {
			assert.Equal(t, actId, flwr.RequestId)
			assert.Equal(t, h.sender.Id, flwr.UserUrl)
			assert.Equal(t, callerHost, flwr.Host)
			assert.Equal(t, callerName, flwr.Handle)
			assert.Equal(t, h.sender.Inbox, flwr.UserInbox)
			assert.Equal(t, h.sender.Endpoints.SharedInbox, flwr.SharedInbox)
			return nil
		})
	h.mockMetrics.EXPECT().FollowerAdded()
	h.mockUDir.EXPECT().AcceptFollower(actId, h.sender.Id, h.sender.Inbox, "pixie").Return(nil)

	inbox.Process(h.sender, body)
}

func TestInbox_Follow_AlreadyHandled(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := fmt.Sprintf("https://%s/act/1", callerHost)
	pixieUrl := fmt.Sprintf("https://%s/u/pixie", localHost)
	body := makeFollowActivity(actId, h.sender.Id, pixieUrl)

	// Second delivery of the same activity: nothing beyond the dedupe check
	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(true, nil)

	inbox.Process(h.sender, body)
}

func TestInbox_UndoFollow_RemovesFollower(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	followId := fmt.Sprintf("https://%s/act/1", callerHost)
	undoId := fmt.Sprintf("https://%s/act/2", callerHost)
	pixieUrl := fmt.Sprintf("https://%s/u/pixie", localHost)
	body := makeUndoFollowActivity(undoId, h.sender.Id, followId, pixieUrl)

	h.mockRepo.EXPECT().MarkActivityHandled(undoId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SaveActivity(gomock.Any()).Return(nil, nil)
	h.mockRepo.EXPECT().DoesAccountExist("pixie").Return(true, nil)
	h.mockRepo.EXPECT().RemoveFollower("pixie", h.sender.Id).Return(nil)
	h.mockMetrics.EXPECT().FollowerRemoved()

	inbox.Process(h.sender, body)
}

func TestInbox_UndoFollow_NeverFollowed(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	followId := fmt.Sprintf("https://%s/act/1", callerHost)
	undoId := fmt.Sprintf("https://%s/act/2", callerHost)
	pixieUrl := fmt.Sprintf("https://%s/u/pixie", localHost)
	body := makeUndoFollowActivity(undoId, h.sender.Id, followId, pixieUrl)

	// Removing a follower that never followed still succeeds downstream
	h.mockRepo.EXPECT().MarkActivityHandled(undoId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SaveActivity(gomock.Any()).Return(nil, nil)
	h.mockRepo.EXPECT().DoesAccountExist("pixie").Return(true, nil)
	h.mockRepo.EXPECT().RemoveFollower("pixie", h.sender.Id).Return(nil)
	h.mockMetrics.EXPECT().FollowerRemoved()

	inbox.Process(h.sender, body)
}

func TestInbox_Follow_UnknownUser(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := fmt.Sprintf("https://%s/act/1", callerHost)
	ghostUrl := fmt.Sprintf("https://%s/u/ghost", localHost)
	body := makeFollowActivity(actId, h.sender.Id, ghostUrl)

	// Unknown target user: the activity is consumed and dropped
	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SaveActivity(gomock.Any()).Return(nil, nil)
	h.mockRepo.EXPECT().DoesAccountExist("ghost").Return(false, nil)

	inbox.Process(h.sender, body)
}

func TestInbox_Follow_ForeignTarget(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := fmt.Sprintf("https://%s/act/1", callerHost)
	foreignUrl := "https://elsewhere.example/u/pixie"
	body := makeFollowActivity(actId, h.sender.Id, foreignUrl)

	// A Follow of a user on another host is dropped without an account lookup
	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SaveActivity(gomock.Any()).Return(nil, nil)

	inbox.Process(h.sender, body)
}

func TestInbox_OtherActivity_Ignored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "https://%s/act/3",
		"type": "Like",
		"actor": %q,
		"object": "https://%s/u/pixie/status/1"
	}`, callerHost, h.sender.Id, localHost))

	// Not a follower change: no repo interaction at all
	inbox.Process(h.sender, body)
}

func TestInbox_Follow_RepoError(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := fmt.Sprintf("https://%s/act/1", callerHost)
	pixieUrl := fmt.Sprintf("https://%s/u/pixie", localHost)
	body := makeFollowActivity(actId, h.sender.Id, pixieUrl)

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SaveActivity(gomock.Any()).Return(nil, nil)
	h.mockRepo.EXPECT().DoesAccountExist("pixie").Return(true, nil)
	h.mockRepo.EXPECT().AddFollower("pixie", gomock.Any()).Return(fmt.Errorf("disk on fire"))

	// No metrics, no Accept; and the error does not escape
	inbox.Process(h.sender, body)
}

func TestInbox_InvalidJson(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	inbox.Process(h.sender, []byte("this is not json"))
}
