package logic

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/spaolacci/murmur3"

	"warble/dal"
	"warble/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_feed_bridge.go -package mocks warble/logic IFeedBridge

// IFeedBridge mirrors external RSS/Atom feeds into local bridge accounts.
type IFeedBridge interface {
	GetAccountForFeed(urlStr string) (acct *dal.Account, isNew bool, err error)
}

const feedFetchTimeoutSec = 20
const feedCheckLoopSec = 60

type SiteInfo struct {
	Url         string
	FeedUrl     string
	Title       string
	Description string
	LastUpdated time.Time
}

type feedBridge struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	keyStore  IKeyStore
	messenger IMessenger
	metrics   IMetrics
	userAgent shared.IUserAgent
	idb       shared.IdBuilder
	stripper  *bluemonday.Policy
}

func NewFeedBridge(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	messenger IMessenger,
	metrics IMetrics,
	userAgent shared.IUserAgent,
) IFeedBridge {
	fb := feedBridge{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		keyStore:  keyStore,
		messenger: messenger,
		metrics:   metrics,
		userAgent: userAgent,
		idb:       shared.IdBuilder{Host: cfg.Host},
		stripper:  bluemonday.StrictPolicy(),
	}
	go fb.feedCheckLoop()
	return &fb
}

func (fb *feedBridge) GetAccountForFeed(urlStr string) (acct *dal.Account, isNew bool, err error) {

	si, feed, err := fb.getSiteInfo(urlStr)
	if err != nil {
		return nil, false, err
	}

	handle := shared.GetHandleFromUrl(si.Url)

	pubKey, privKey, err := fb.keyStore.MakeKeyPair()
	if err != nil {
		return nil, false, err
	}

	newAcct := dal.Account{
		CreatedAt:    time.Now().UTC(),
		UserUrl:      fb.idb.UserUrl(handle),
		Handle:       handle,
		Name:         si.Title,
		Summary:      shared.TruncateWithEllipsis(si.Description, shared.MaxSummaryLen),
		SiteUrl:      si.Url,
		FeedUrl:      si.FeedUrl,
		NextCheckDue: fb.getNextCheckTime(si.LastUpdated),
		PubKey:       pubKey,
	}
	isNew, err = fb.repo.AddAccountIfNotExist(&newAcct, privKey)
	if err != nil {
		return nil, false, err
	}
	acct, err = fb.repo.GetAccount(handle)
	if err != nil {
		return nil, false, err
	}

	if isNew {
		fb.logger.Infof("Created bridge account '%s' for feed %s", handle, si.FeedUrl)
		// Backfill quietly: known items get recorded but not broadcast
		if err = fb.updateAccountPosts(acct, feed, false); err != nil {
			return nil, false, err
		}
	}

	return acct, isNew, nil
}

func (fb *feedBridge) getSiteInfo(urlStr string) (*SiteInfo, *gofeed.Feed, error) {

	if !strings.HasPrefix(urlStr, "http://") && !strings.HasPrefix(urlStr, "https://") {
		urlStr = "https://" + urlStr
	}
	parsedUrl, err := url.Parse(urlStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid URL: %s: %v", urlStr, err)
	}

	si := SiteInfo{Url: parsedUrl.String()}

	resp, err := fb.httpGet(si.Url)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") {
		// It's a page; discover the feed link and site metadata
		doc, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return nil, nil, err
		}
		si.FeedUrl = fb.getFeedUrl(parsedUrl, doc)
		if si.FeedUrl == "" {
			return nil, nil, fmt.Errorf("no feed link found at %s", si.Url)
		}
		fb.getMetas(doc, &si)
	} else {
		// The URL itself points at the feed
		si.FeedUrl = si.Url
	}

	feed, err := fb.fetchParseFeed(si.FeedUrl)
	if err != nil {
		return nil, nil, err
	}

	if si.Title == "" {
		si.Title = feed.Title
	}
	if si.Description == "" {
		si.Description = fb.stripper.Sanitize(feed.Description)
	}
	if feed.Link != "" {
		si.Url = feed.Link
	}
	si.LastUpdated = getFeedLastUpdated(feed)

	if si.Title == "" {
		return nil, nil, errors.New("site has no usable title")
	}

	return &si, feed, nil
}

func (fb *feedBridge) getFeedUrl(siteUrl *url.URL, doc *goquery.Document) string {
	res := ""
	doc.Find("link[rel='alternate']").Each(func(_ int, s *goquery.Selection) {
		if res != "" {
			return
		}
		linkType, _ := s.Attr("type")
		if linkType != "application/rss+xml" && linkType != "application/atom+xml" {
			return
		}
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		hrefUrl, err := url.Parse(href)
		if err != nil {
			return
		}
		res = siteUrl.ResolveReference(hrefUrl).String()
	})
	return res
}

func (fb *feedBridge) getMetas(doc *goquery.Document, si *SiteInfo) {
	if t := doc.Find("title").First().Text(); t != "" {
		si.Title = strings.TrimSpace(t)
	}
	doc.Find("meta[property='og:title']").Each(func(_ int, s *goquery.Selection) {
		if val, ok := s.Attr("content"); ok && val != "" {
			si.Title = val
		}
	})
	doc.Find("meta[name='description'], meta[property='og:description']").Each(func(_ int, s *goquery.Selection) {
		if val, ok := s.Attr("content"); ok && val != "" {
			si.Description = val
		}
	})
}

func getFeedLastUpdated(feed *gofeed.Feed) time.Time {
	res := time.Time{}
	if feed.UpdatedParsed != nil {
		res = *feed.UpdatedParsed
	}
	if feed.PublishedParsed != nil && feed.PublishedParsed.After(res) {
		res = *feed.PublishedParsed
	}
	for _, itm := range feed.Items {
		if itm.PublishedParsed != nil && itm.PublishedParsed.After(res) {
			res = *itm.PublishedParsed
		}
		if itm.UpdatedParsed != nil && itm.UpdatedParsed.After(res) {
			res = *itm.UpdatedParsed
		}
	}
	return res
}

func (fb *feedBridge) httpGet(urlStr string) (*http.Response, error) {
	req, err := http.NewRequest("GET", urlStr, nil)
	if err != nil {
		return nil, err
	}
	fb.userAgent.AddUserAgent(req)
	client := http.Client{Timeout: feedFetchTimeoutSec * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: got status %d", urlStr, resp.StatusCode)
	}
	return resp, nil
}

func (fb *feedBridge) fetchParseFeed(feedUrl string) (*gofeed.Feed, error) {
	resp, err := fb.httpGet(feedUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	fp := gofeed.NewParser()
	return fp.ParseString(string(bodyBytes))
}

func getItemHash(itm *gofeed.Item) int64 {
	hasher := murmur3.New64()
	hasher.Write([]byte(itm.GUID))
	hasher.Write([]byte(itm.Link))
	return int64(hasher.Sum64())
}

// updateAccountPosts records feed items not seen before; when broadcast is
// set, new items also become posts and go out to followers.
func (fb *feedBridge) updateAccountPosts(acct *dal.Account, feed *gofeed.Feed, broadcast bool) error {

	items := make([]*gofeed.Item, len(feed.Items))
	copy(items, feed.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return itemTime(items[i]).Before(itemTime(items[j]))
	})

	for _, itm := range items {
		postTime := itemTime(itm)
		fp := dal.FeedPost{
			PostGuidHash: getItemHash(itm),
			PostTime:     postTime,
			Link:         itm.Link,
			Title:        itm.Title,
		}
		isNew, err := fb.repo.AddFeedPostIfNew(acct.Id, &fp)
		if err != nil {
			return err
		}
		if !isNew || !broadcast {
			continue
		}

		content := fb.makePostContent(itm)
		statusId := fb.idb.UserStatus(acct.Handle, fb.repo.GetNextId())
		post := dal.Post{
			StatusId:  statusId,
			Content:   content,
			Published: postTime,
		}
		if err = fb.repo.AddPost(acct.Id, &post); err != nil {
			return err
		}
		fb.metrics.PostCreated()
		if err = fb.messenger.EnqueueBroadcast(acct.Handle, statusId, postTime, content); err != nil {
			fb.logger.Errorf("Failed to enqueue bridge post %s: %v", statusId, err)
		}
	}
	return nil
}

func itemTime(itm *gofeed.Item) time.Time {
	if itm.PublishedParsed != nil {
		return *itm.PublishedParsed
	}
	if itm.UpdatedParsed != nil {
		return *itm.UpdatedParsed
	}
	return time.Now().UTC()
}

func (fb *feedBridge) makePostContent(itm *gofeed.Item) string {
	desc := fb.stripper.Sanitize(itm.Description)
	desc = shared.TruncateWithEllipsis(strings.TrimSpace(desc), shared.MaxSummaryLen)
	res := fmt.Sprintf("<p><a href='%s'>%s</a></p>", itm.Link, itm.Title)
	if desc != "" {
		res += fmt.Sprintf("<p>%s</p>", desc)
	}
	return res
}

// Stale feeds get checked more rarely, by age bracket.
func (fb *feedBridge) getNextCheckTime(lastChanged time.Time) time.Time {
	now := time.Now().UTC()
	age := now.Sub(lastChanged)
	sched := fb.cfg.BridgeSchedule
	var waitMin int
	switch {
	case age < 24*time.Hour:
		waitMin = sched.Day
	case age < 7*24*time.Hour:
		waitMin = sched.Week
	case age < 28*24*time.Hour:
		waitMin = sched.Weeks4
	default:
		waitMin = sched.Older
	}
	if waitMin <= 0 {
		waitMin = 60
	}
	return now.Add(time.Duration(waitMin) * time.Minute)
}

func (fb *feedBridge) feedCheckLoop() {
	for {
		time.Sleep(feedCheckLoopSec * time.Second)
		fb.feedCheckLoopInner()
	}
}

func (fb *feedBridge) feedCheckLoopInner() {

	defer func() {
		if r := recover(); r != nil {
			fb.logger.Errorf("Panic in feed check loop: %v", r)
		}
	}()

	acct, err := fb.repo.GetAccountToCheck(time.Now().UTC())
	if err != nil {
		fb.logger.Errorf("Failed to get account to check: %v", err)
		return
	}
	if acct == nil {
		return
	}
	if err = fb.updateFeed(acct); err != nil {
		fb.logger.Warnf("Failed to update feed for '%s': %v", acct.Handle, err)
		// Push the next check out anyway so a broken feed does not spin
		_ = fb.repo.UpdateAccountFeedTimes(acct.Id, acct.FeedLastUpdated,
			fb.getNextCheckTime(acct.FeedLastUpdated))
	}
}

func (fb *feedBridge) updateFeed(acct *dal.Account) error {

	fb.logger.Debugf("Checking feed for '%s': %s", acct.Handle, acct.FeedUrl)

	feed, err := fb.fetchParseFeed(acct.FeedUrl)
	if err != nil {
		return err
	}
	if err = fb.updateAccountPosts(acct, feed, true); err != nil {
		return err
	}
	fb.metrics.FeedUpdated()

	lastUpdated := getFeedLastUpdated(feed)
	return fb.repo.UpdateAccountFeedTimes(acct.Id, lastUpdated, fb.getNextCheckTime(lastUpdated))
}
