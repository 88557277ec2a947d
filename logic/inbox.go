package logic

import (
	"encoding/json"
	"time"

	"warble/dal"
	"warble/dto"
	"warble/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks warble/logic IInbox

// IInbox consumes inbound activities one at a time. Process never fails the
// caller: every error is caught and logged, and the activity counts as
// consumed either way. At-most-once, best-effort.
type IInbox interface {
	Process(senderInfo *dto.UserInfo, bodyBytes []byte)
}

type inboundKind int

const (
	inFollow inboundKind = iota
	inUndoFollow
	inOther
)

// The one place an inbound document's shape gets probed. Everything after
// works off this resolved form.
type inboundActivity struct {
	kind      inboundKind
	id        string
	actor     string
	targetIri string // the user-identifying IRI the activity is about
}

type inbox struct {
	cfg     *shared.Config
	logger  shared.ILogger
	idb     shared.IdBuilder
	repo    dal.IRepo
	udir    IUserDirectory
	metrics IMetrics
}

func NewInbox(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	udir IUserDirectory,
	metrics IMetrics,
) IInbox {
	return &inbox{
		cfg:     cfg,
		logger:  logger,
		idb:     shared.IdBuilder{Host: cfg.Host},
		repo:    repo,
		udir:    udir,
		metrics: metrics,
	}
}

func (ib *inbox) Process(senderInfo *dto.UserInfo, bodyBytes []byte) {

	defer func() {
		if r := recover(); r != nil {
			ib.logger.Errorf("Panic while processing inbound activity: %v", r)
		}
	}()

	act, ok := ib.classify(bodyBytes)
	if !ok {
		return
	}
	if act.kind == inOther {
		ib.logger.Debugf("Ignoring inbound activity %s: not a follower change", act.id)
		return
	}

	// This activity already handled?
	alreadyHandled, err := ib.repo.MarkActivityHandled(act.id, time.Now())
	if err != nil {
		ib.logger.Errorf("Failed to mark activity handled: %s: %v", act.id, err)
		return
	}
	if alreadyHandled {
		ib.logger.Infof("Activity has already been handled: %s", act.id)
		return
	}

	ib.recordActivity(act, bodyBytes)

	// A target that is not one of our users is dropped without a fuss; the
	// inbox never fails a delivery because the object is foreign or malformed.
	user, ok := ib.idb.LocalUserName(act.targetIri)
	if !ok {
		ib.logger.Infof("Inbound %s targets a non-local IRI; dropping: %s", activityLabel(act.kind), act.targetIri)
		return
	}
	exists, err := ib.repo.DoesAccountExist(user)
	if err != nil {
		ib.logger.Errorf("Failed to look up account '%s': %v", user, err)
		return
	}
	if !exists {
		ib.logger.Infof("Inbound %s targets unknown user '%s'; dropping", activityLabel(act.kind), user)
		return
	}

	switch act.kind {
	case inFollow:
		ib.handleFollow(user, act, senderInfo)
	case inUndoFollow:
		ib.handleUnfollow(user, act)
	}
}

// classify resolves the loose inbound document into a tagged variant, once.
func (ib *inbox) classify(bodyBytes []byte) (*inboundActivity, bool) {

	var base dto.ActivityInBase
	if err := json.Unmarshal(bodyBytes, &base); err != nil {
		ib.logger.Infof("Invalid JSON in inbound activity body: %v", err)
		return nil, false
	}

	res := inboundActivity{kind: inOther, id: base.Id, actor: base.Actor}

	switch base.Type {
	case "Follow":
		var actFollow dto.ActivityIn[string]
		if err := json.Unmarshal(bodyBytes, &actFollow); err != nil {
			ib.logger.Infof("Cannot parse Follow activity: %v", err)
			return &res, true
		}
		res.kind = inFollow
		res.targetIri = actFollow.Object
	case "Undo":
		objMap, _ := base.Object.(map[string]interface{})
		if objType, _ := objMap["type"].(string); objType != "Follow" {
			break
		}
		var actUndo dto.ActivityIn[dto.ActivityIn[string]]
		if err := json.Unmarshal(bodyBytes, &actUndo); err != nil {
			ib.logger.Infof("Cannot parse Undo Follow activity: %v", err)
			return &res, true
		}
		res.kind = inUndoFollow
		res.targetIri = actUndo.Object.Object
	}

	return &res, true
}

func (ib *inbox) handleFollow(user string, act *inboundActivity, senderInfo *dto.UserInfo) {

	ib.logger.Infof("Handling Follow of '%s' by %s", user, act.actor)

	actorHostName, err := shared.GetHostName(act.actor)
	if err != nil {
		ib.logger.Warnf("Cannot extract host from actor IRI: %v", err)
		return
	}

	flwr := dal.FollowerInfo{
		RequestId: act.id,
		UserUrl:   act.actor,
		Host:      actorHostName,
	}
	if senderInfo != nil {
		flwr.Handle = senderInfo.PreferredUserName
		flwr.UserInbox = senderInfo.Inbox
		flwr.SharedInbox = senderInfo.Endpoints.SharedInbox
	}
	if err = ib.repo.AddFollower(user, &flwr); err != nil {
		ib.logger.Errorf("Failed to store follower of '%s': %v", user, err)
		return
	}
	ib.metrics.FollowerAdded()

	if err := ib.udir.AcceptFollower(flwr.RequestId, flwr.UserUrl, flwr.UserInbox, user); err != nil {
		ib.logger.Errorf("Error accepting follower: %v", err)
	}
}

func (ib *inbox) handleUnfollow(user string, act *inboundActivity) {

	ib.logger.Infof("Handling Undo Follow of '%s' by %s", user, act.actor)

	if err := ib.repo.RemoveFollower(user, act.actor); err != nil {
		ib.logger.Errorf("Failed to remove follower of '%s': %v", user, err)
		return
	}
	ib.metrics.FollowerRemoved()
}

// Keeps a durable record of the activity document. Failures are logged and
// swallowed; the follower ledger update matters more than the archive.
func (ib *inbox) recordActivity(act *inboundActivity, bodyBytes []byte) {

	if act.id == "" {
		return
	}
	payload := map[string]any{}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return
	}
	if _, err := ib.repo.SaveActivity(&dal.StoredActivity{Id: act.id, Payload: payload}); err != nil {
		ib.logger.Errorf("Failed to record inbound activity %s: %v", act.id, err)
	}
}

func activityLabel(kind inboundKind) string {
	switch kind {
	case inFollow:
		return "Follow"
	case inUndoFollow:
		return "Undo Follow"
	}
	return "activity"
}
