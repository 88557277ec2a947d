package logic

import (
	"regexp"
	"strconv"
	"time"

	"warble/dal"
	"warble/dto"
	"warble/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_messenger.go -package mocks warble/logic IMessenger

type IMessenger interface {
	SendMessageAsync(byUser string, toInbox, msg string, mentions []*MsgMention, to, cc []string, inReplyTo string)
	EnqueueBroadcast(user string, statusId string, published time.Time, msg string) error
}

type MsgMention struct {
	Moniker string
	UserUrl string
}

const maxParallelSends = 5
const queueLoopIdleWakeSec = 5

type messenger struct {
	cfg             *shared.Config
	logger          shared.ILogger
	repo            dal.IRepo
	keyStore        IKeyStore
	sender          IActivitySender
	metrics         IMetrics
	idb             shared.IdBuilder
	reStatusId      *regexp.Regexp
	newItemsInQueue chan struct{}
	dqProgress      map[int]interface{}
}

func NewMessenger(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	sender IActivitySender,
	metrics IMetrics,
) IMessenger {

	m := messenger{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		keyStore: keyStore,
		sender:   sender,
		metrics:  metrics,
		idb:      shared.IdBuilder{Host: cfg.Host},
	}

	m.reStatusId = regexp.MustCompile("^https://[^/]+/u/[^/]+/status/([0-9]+)$")

	m.newItemsInQueue = make(chan struct{})
	m.dqProgress = make(map[int]interface{})
	go m.deliveryQueueLoop()

	return &m
}

func (m *messenger) SendMessageAsync(byUser string, toInbox, msg string,
	mentions []*MsgMention, to, cc []string, inReplyTo string,
) {
	go m.sendMessage(byUser, toInbox, msg, mentions, to, cc, inReplyTo)
}

func (m *messenger) sendMessage(byUser string, toInbox, msg string,
	mentions []*MsgMention, to, cc []string, inReplyTo string,
) {
	published := time.Now().UTC().Format(time.RFC3339)
	var tags []dto.Tag
	for _, mention := range mentions {
		tags = append(tags, dto.Tag{Type: "Mention", Href: mention.UserUrl, Name: mention.Moniker})
	}
	var ptags *[]dto.Tag = nil
	if len(tags) != 0 {
		ptags = &tags
	}
	id := m.repo.GetNextId()
	err := m.sendToInbox(byUser, id, to, cc, toInbox, &inReplyTo, published, msg, ptags)
	if err != nil {
		m.logger.Errorf("Failed to send message to inbox %s", toInbox)
	}
}

// EnqueueBroadcast fans a post out to the distinct inboxes of the user's
// followers; the delivery loop picks the items up from the queue.
func (m *messenger) EnqueueBroadcast(user string, statusId string, published time.Time, msg string) error {

	followers, err := m.repo.GetFollowers(user)
	if err != nil {
		return err
	}

	// Collect distinct shared inboxes
	inboxes := make(map[string]struct{})
	for _, f := range followers {
		inboxName := f.SharedInbox
		if inboxName == "" {
			inboxName = f.UserInbox
		}
		if inboxName == "" {
			continue
		}
		if _, exists := inboxes[inboxName]; !exists {
			inboxes[inboxName] = struct{}{}
		}
	}

	if len(inboxes) == 0 {
		return nil
	}

	// Create a queue item for each inbox
	for inboxUrl := range inboxes {
		err = m.repo.AddQueueItem(&dal.DeliveryQueueItem{
			SendingUser: user,
			ToInbox:     inboxUrl,
			Published:   published,
			StatusId:    statusId,
			Content:     msg,
		})
		if err != nil {
			return err
		}
	}

	go func() {
		m.newItemsInQueue <- struct{}{}
	}()

	return nil
}

func (m *messenger) deliveryQueueLoop() {

	itemSent := make(chan int)

	sendItems := func() {
		if len(m.dqProgress) >= maxParallelSends {
			return
		}
		maxId := -1
		for id := range m.dqProgress {
			maxId = max(maxId, id)
		}
		var err error
		var items []*dal.DeliveryQueueItem
		var qlen int
		items, qlen, err = m.repo.GetQueueItems(maxId, maxParallelSends-len(m.dqProgress))
		if err != nil {
			m.logger.Errorf("Failed to get delivery queue items: %v", err)
			return
		}
		m.metrics.DeliveryQueueLength(qlen)
		for _, item := range items {
			m.dqProgress[item.Id] = struct{}{}
			go m.sendQueuedItem(item, itemSent)
		}
	}

	removeSentItem := func(id int) {
		if err := m.repo.DeleteQueueItem(id); err != nil {
			m.logger.Errorf("Failed to remove sent item from queue: %d: %v", id, err)
		}
		delete(m.dqProgress, id)
	}

	for {
		select {
		case <-m.newItemsInQueue:
			m.logger.Debug("New items in delivery queue")
			sendItems()
		case <-time.After(queueLoopIdleWakeSec * time.Second):
			m.logger.Debug("Delivery queue idle loop")
			sendItems()
		case id := <-itemSent:
			m.logger.Debugf("Queue item sent: %d", id)
			removeSentItem(id)
			sendItems()
		}
	}
}

func (m *messenger) getIdVal(statusIdUrl string) uint64 {
	groups := m.reStatusId.FindStringSubmatch(statusIdUrl)
	if groups == nil {
		return m.repo.GetNextId()
	}
	idStr := groups[1]
	var idVal int64
	var err error
	if idVal, err = strconv.ParseInt(idStr, 10, 64); err != nil {
		return m.repo.GetNextId()
	}
	return uint64(idVal)
}

func (m *messenger) sendQueuedItem(item *dal.DeliveryQueueItem, itemSent chan int) {

	var err error
	to := []string{shared.ActivityPublic}
	userFollowers := m.idb.UserFollowers(item.SendingUser)

	// This should never fail, but if it does, we just make up a new ID
	idVal := m.getIdVal(item.StatusId)

	err = m.sendToInbox(
		item.SendingUser,
		idVal,
		to,
		[]string{userFollowers},
		item.ToInbox,
		nil,
		item.Published.UTC().Format(time.RFC3339),
		item.Content,
		nil)
	if err != nil {
		m.logger.Errorf("Failed to deliver queued item to %s: %v", item.ToInbox, err)
	}

	itemSent <- item.Id
}

func (m *messenger) sendToInbox(byUser string, id uint64, to, cc []string, toInbox string,
	inReplyTo *string, published, msg string, tags *[]dto.Tag,
) error {

	privKey, err := m.keyStore.GetPrivKey(byUser)
	if err != nil {
		return err
	}

	note := dto.Note{
		Id:           m.idb.UserStatus(byUser, id),
		Type:         "Note",
		Published:    published,
		AttributedTo: m.idb.UserUrl(byUser),
		InReplyTo:    inReplyTo,
		To:           to,
		Cc:           cc,
		Content:      msg,
		Tag:          tags,
	}
	act := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      m.idb.UserStatusActivity(byUser, id),
		Type:    "Create",
		Actor:   m.idb.UserUrl(byUser),
		To:      &to,
		Cc:      &cc,
		Object:  &note,
	}

	return m.sender.Send(privKey, byUser, toInbox, &act)
}
