package logic

import (
	"fmt"
	"strings"
	"time"

	"warble/dal"
	"warble/dto"
	"warble/shared"
	"warble/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_directory.go -package mocks warble/logic IUserDirectory

const websiteLinkTemplate = "<a href='%s' target='_blank' rel='nofollow noopener noreferrer me' translate='no'>%s</a>"

type IUserDirectory interface {
	// RegisterUser returns (nil, nil) when the handle is already taken.
	RegisterUser(handle, name, summary string) (*dal.Account, error)
	GetWebfinger(user string) *dto.WebfingerResp
	GetUserInfo(user string) *dto.UserInfo
	GetOutboxSummary(user string) *dto.OrderedListSummary
	GetFollowersSummary(user string) *dto.OrderedListSummary
	GetFollowingSummary(user string) *dto.OrderedListSummary
	AcceptFollower(followActId, followerUserUrl, followerInbox, followedUser string) error
}

type userDirectory struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	idb      shared.IdBuilder
	keyStore IKeyStore
	sender   IActivitySender
	txt      texts.ITexts
}

func NewUserDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	sender IActivitySender,
	txt texts.ITexts,
) IUserDirectory {
	return &userDirectory{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		idb:      shared.IdBuilder{Host: cfg.Host},
		keyStore: keyStore,
		sender:   sender,
		txt:      txt}
}

func (udir *userDirectory) RegisterUser(handle, name, summary string) (*dal.Account, error) {

	handle = strings.ToLower(handle)

	pubKey, privKey, err := udir.keyStore.MakeKeyPair()
	if err != nil {
		return nil, err
	}

	acct := dal.Account{
		CreatedAt: time.Now().UTC(),
		UserUrl:   udir.idb.UserUrl(handle),
		Handle:    handle,
		Name:      name,
		Summary:   summary,
		PubKey:    pubKey,
	}
	isNew, err := udir.repo.AddAccountIfNotExist(&acct, privKey)
	if err != nil {
		return nil, err
	}
	// Taken handle is not an error; callers read a nil account as a conflict
	if !isNew {
		udir.logger.Infof("Handle already taken: '%s'", handle)
		return nil, nil
	}
	udir.logger.Infof("Registered new user '%s'", handle)
	return &acct, nil
}

func (udir *userDirectory) GetWebfinger(user string) *dto.WebfingerResp {

	cfgHost := udir.cfg.Host
	acct, err := udir.repo.GetAccount(user)
	if err != nil || acct == nil {
		return nil
	}

	user = strings.ToLower(user)
	resp := dto.WebfingerResp{
		Subject: fmt.Sprintf("acct:%s@%s", user, cfgHost),
		Aliases: []string{
			udir.idb.UserProfile(user),
			udir.idb.UserUrl(user),
		},
		Links: []dto.WebfingerLink{
			{
				Rel:  "http://webfinger.net/rel/profile-page",
				Type: "text/html",
				Href: udir.idb.UserProfile(user),
			},
			{
				Rel:  "self",
				Type: "application/activity+json",
				Href: udir.idb.UserUrl(user),
			},
		},
	}
	return &resp
}

func (udir *userDirectory) getWebsiteAttachment(url string) string {
	justUrl := strings.TrimPrefix(url, "https://")
	justUrl = strings.TrimPrefix(justUrl, "http://")
	return fmt.Sprintf(websiteLinkTemplate, url, justUrl)
}

func (udir *userDirectory) GetUserInfo(user string) *dto.UserInfo {

	user = strings.ToLower(user)
	userUrl := udir.idb.UserUrl(user)
	acct, err := udir.repo.GetAccount(user)
	if err != nil || acct == nil {
		return nil
	}

	actorType := "Person"
	if acct.FeedUrl != "" {
		// Bridged feeds show up as automated accounts
		actorType = "Service"
	}

	resp := dto.UserInfo{
		Context: []string{
			"https://www.w3.org/ns/activitystreams",
			"https://w3id.org/security/v1",
		},
		Id:                userUrl,
		Type:              actorType,
		PreferredUserName: user,
		Name:              acct.Name,
		Published:         acct.CreatedAt.Format(time.RFC3339),
		Inbox:             udir.idb.UserInbox(user),
		Outbox:            udir.idb.UserOutbox(user),
		Followers:         udir.idb.UserFollowers(user),
		Following:         udir.idb.UserFollowing(user),
		Endpoints:         dto.UserEndpoints{SharedInbox: udir.idb.SharedInbox()},
		PublicKey: dto.PublicKey{
			Id:           udir.idb.UserKeyId(user),
			Owner:        userUrl,
			PublicKeyPem: acct.PubKey,
		},
		Attachments: []dto.Attachment{},
	}

	if user == udir.cfg.Instance.Admin {
		resp.Summary = udir.txt.Get("admin_bio.html")
		resp.ManuallyApproves = udir.cfg.Instance.ManuallyApprovesFollows
		resp.Icon = dto.Image{Type: "Image", Url: udir.cfg.Instance.ProfilePic}
		resp.Image = dto.Image{Type: "Image", Url: udir.cfg.Instance.HeaderPic}
	} else {
		resp.Summary = acct.Summary
		resp.Icon = dto.Image{Type: "Image", Url: acct.ProfileImageUrl}
		resp.Image = dto.Image{Type: "Image", Url: acct.HeaderImageUrl}
	}
	if acct.SiteUrl != "" {
		resp.Attachments = append(resp.Attachments, dto.Attachment{
			Type:  "PropertyValue",
			Name:  "Website",
			Value: udir.getWebsiteAttachment(acct.SiteUrl),
		})
	}
	if resp.Icon.Url == "" {
		resp.Icon.Url = udir.cfg.FallbackProfilePic
	}

	return &resp
}

func (udir *userDirectory) GetOutboxSummary(user string) *dto.OrderedListSummary {

	var err error
	var exists bool
	user = strings.ToLower(user)
	exists, err = udir.repo.DoesAccountExist(user)
	if err != nil || !exists {
		return nil
	}

	var postCount uint
	if postCount, err = udir.repo.GetPostCount(user); err != nil {
		udir.logger.Errorf("Failed to get post count for '%s': %v", user, err)
		return nil
	}

	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserOutbox(user),
		Type:       "OrderedCollection",
		TotalItems: postCount,
	}
	return &resp
}

func (udir *userDirectory) GetFollowersSummary(user string) *dto.OrderedListSummary {

	var err error
	var exists bool
	user = strings.ToLower(user)
	exists, err = udir.repo.DoesAccountExist(user)
	if err != nil || !exists {
		return nil
	}

	var followerCount uint
	if followerCount, err = udir.repo.GetFollowerCount(user); err != nil {
		udir.logger.Errorf("Failed to get follower count for '%s': %v", user, err)
		return nil
	}

	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserFollowers(user),
		Type:       "OrderedCollection",
		TotalItems: followerCount,
	}
	return &resp
}

func (udir *userDirectory) GetFollowingSummary(user string) *dto.OrderedListSummary {

	var err error
	var exists bool
	user = strings.ToLower(user)
	exists, err = udir.repo.DoesAccountExist(user)
	if err != nil || !exists {
		return nil
	}

	// Nobody here follows remote accounts
	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserFollowing(user),
		Type:       "OrderedCollection",
		TotalItems: 0,
	}
	return &resp
}

func (udir *userDirectory) AcceptFollower(followActId, followerUserUrl, followerInbox, followedUser string) error {

	udir.logger.Infof("Accepting follow %s of '%s'", followActId, followedUser)

	privKey, err := udir.keyStore.GetPrivKey(followedUser)
	if err != nil {
		return err
	}

	actAccept := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      udir.idb.ActivityUrl(udir.repo.GetNextId()),
		Type:    "Accept",
		Actor:   udir.idb.UserUrl(followedUser),
		Object: map[string]any{
			"id":     followActId,
			"type":   "Follow",
			"actor":  followerUserUrl,
			"object": udir.idb.UserUrl(followedUser),
		},
	}
	return udir.sender.Send(privKey, followedUser, followerInbox, &actAccept)
}
