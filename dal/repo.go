package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"warble/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks warble/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetNextId() uint64

	// Accounts
	AddAccountIfNotExist(account *Account, privKey string) (isNew bool, err error)
	DoesAccountExist(user string) (bool, error)
	GetAccount(user string) (*Account, error)
	GetAccountsPage(offset, limit int) ([]*Account, int, error)
	GetPrivKey(user string) (string, error)
	UpdateAccountFeedTimes(accountId int, lastUpdated, nextCheckDue time.Time) error
	GetAccountToCheck(checkDue time.Time) (*Account, error)

	// Follower ledger. GetFollowers returns followers in follow order, never
	// nil. AddFollower is a no-op when the actor already follows; RemoveFollower
	// removes all matching entries and is a no-op when there are none.
	GetFollowers(user string) ([]*FollowerInfo, error)
	GetFollowerCount(user string) (uint, error)
	AddFollower(user string, follower *FollowerInfo) error
	RemoveFollower(user, followerUserUrl string) error

	// Posts, replies, reactions
	AddPost(accountId int, post *Post) error
	GetPostByStatusId(statusId string) (*Post, error)
	GetPostCount(user string) (uint, error)
	GetPostsByUser(user string, limit int) ([]*Post, error)
	GetTopPosts(limit int) ([]*Post, error)
	GetReplies(statusId string) ([]*Post, error)
	SetReaction(postId int, reactor string, value int, when time.Time) error

	// Feed bridge bookkeeping
	AddFeedPostIfNew(accountId int, post *FeedPost) (isNew bool, err error)
	GetFeedLastUpdated(accountId int) (time.Time, error)

	// Outbound delivery queue
	AddQueueItem(item *DeliveryQueueItem) error
	GetQueueItems(aboveId, maxCount int) ([]*DeliveryQueueItem, int, error)
	DeleteQueueItem(id int) error

	// Inbound dedupe
	MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error)

	IStore
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	muId   sync.Mutex
	nextId uint64
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
		nextId: uint64(time.Now().UnixNano()),
	}

	return &repo
}

func (repo *Repo) GetNextId() uint64 {
	repo.muId.Lock()
	res := repo.nextId + 1
	repo.nextId = res
	repo.muId.Unlock()
	return res
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}

	if dbVer == 0 {
		repo.mustAddBuiltInUsers()
	}
}

func (repo *Repo) mustAddBuiltInUsers() {

	idb := shared.IdBuilder{Host: repo.cfg.Host}

	_, err := repo.db.Exec(`INSERT INTO accounts
    	(created_at, user_url, handle, pubkey, privkey)
		VALUES(?, ?, ?, ?, ?)`,
		repo.cfg.Instance.Published, idb.UserUrl(repo.cfg.Instance.Admin),
		repo.cfg.Instance.Admin, repo.cfg.Instance.PubKey, repo.cfg.Instance.PrivKey)

	if err != nil {
		repo.logger.Errorf("Failed to add built-in user '%s': %v", repo.cfg.Instance.Admin, err)
		panic(err)
	}
}

func isDuplicateKey(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067
	}
	return false
}

func (repo *Repo) AddAccountIfNotExist(acct *Account, privKey string) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO accounts
    	(created_at, user_url, handle, name, summary, profile_image_url, header_image_url, site_url, feed_url, pubkey, privkey)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		acct.CreatedAt, acct.UserUrl, acct.Handle, acct.Name, acct.Summary, acct.ProfileImageUrl,
		acct.HeaderImageUrl, acct.SiteUrl, acct.FeedUrl, acct.PubKey, privKey)
	if err == nil {
		return
	}
	// Duplicate key: account with this handle already exists
	if isDuplicateKey(err) {
		isNew = false
		_, err = repo.getAccount(acct.Handle)
		return
	}
	return
}

func (repo *Repo) DoesAccountExist(user string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts WHERE handle=?`, user)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

func (repo *Repo) GetAccount(user string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getAccount(user)
}

const accountCols = `id, created_at, user_url, handle, name, summary, profile_image_url, header_image_url,
	site_url, feed_url, feed_last_updated, next_check_due, pubkey`

func scanAccount(row interface{ Scan(...any) error }) (*Account, error) {
	var res Account
	err := row.Scan(&res.Id, &res.CreatedAt, &res.UserUrl, &res.Handle, &res.Name, &res.Summary,
		&res.ProfileImageUrl, &res.HeaderImageUrl, &res.SiteUrl, &res.FeedUrl,
		&res.FeedLastUpdated, &res.NextCheckDue, &res.PubKey)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) getAccount(user string) (*Account, error) {

	row := repo.db.QueryRow(`SELECT `+accountCols+` FROM accounts WHERE handle=?`, user)
	res, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetAccountsPage(offset, limit int) ([]*Account, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var res []*Account
	var total int
	var err error

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts`)
	if err = row.Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(`SELECT `+accountCols+` FROM accounts ORDER BY id DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (repo *Repo) GetPrivKey(user string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT privkey FROM accounts WHERE handle=?`, user)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		} else {
			return "", err
		}
	}
	return res, nil
}

func (repo *Repo) UpdateAccountFeedTimes(accountId int, lastUpdated, nextCheckDue time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET feed_last_updated=?, next_check_due=?
        WHERE id=?`, lastUpdated, nextCheckDue, accountId)
	return err
}

func (repo *Repo) GetAccountToCheck(checkDue time.Time) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+accountCols+` FROM accounts
		WHERE feed_url<>'' AND next_check_due<? LIMIT 1`, checkDue)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var acct *Account = nil
	for rows.Next() {
		if acct, err = scanAccount(rows); err != nil {
			return nil, err
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return acct, nil
}

func (repo *Repo) GetFollowers(user string) ([]*FollowerInfo, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT followers.request_id, followers.user_url, followers.handle,
			host, user_inbox, shared_inbox
		FROM followers JOIN accounts ON followers.account_id=accounts.id AND accounts.handle=?
		ORDER BY followers.rowid`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*FollowerInfo, 0)
	for rows.Next() {
		fi := FollowerInfo{}
		err = rows.Scan(&fi.RequestId, &fi.UserUrl, &fi.Handle, &fi.Host, &fi.UserInbox, &fi.SharedInbox)
		if err != nil {
			return nil, err
		}
		res = append(res, &fi)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetFollowerCount(user string) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM followers JOIN accounts
		ON followers.account_id=accounts.id AND accounts.handle=?`, user)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) AddFollower(user string, flwr *FollowerInfo) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	row := repo.db.QueryRow(`SELECT id FROM accounts WHERE handle=?`, user)
	var err error
	var accountId int
	if err = row.Scan(&accountId); err != nil {
		return err
	}
	// Re-follow from the same actor leaves the ledger untouched
	_, err = repo.db.Exec(`INSERT INTO followers
		(account_id, request_id, user_url, handle, host, user_inbox, shared_inbox)
		VALUES(?, ?, ?, ?, ?, ?, ?) ON CONFLICT DO NOTHING`,
		accountId, flwr.RequestId, flwr.UserUrl, flwr.Handle, flwr.Host,
		flwr.UserInbox, flwr.SharedInbox)
	if err != nil {
		return err
	}
	return nil
}

func (repo *Repo) RemoveFollower(user, followerUserUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	row := repo.db.QueryRow(`SELECT id FROM accounts WHERE handle=?`, user)
	var err error
	var accountId int
	if err = row.Scan(&accountId); err != nil {
		return err
	}
	_, err = repo.db.Exec(`DELETE FROM followers WHERE account_id=? AND user_url=?`,
		accountId, followerUserUrl)
	if err != nil {
		return err
	}
	return nil
}

const postCols = `posts.id, posts.account_id, posts.status_id, posts.content, posts.published, posts.in_reply_to,
	COALESCE((SELECT SUM(val) FROM reactions WHERE reactions.post_id=posts.id), 0) AS score`

func scanPost(row interface{ Scan(...any) error }) (*Post, error) {
	var res Post
	err := row.Scan(&res.Id, &res.AccountId, &res.StatusId, &res.Content, &res.Published,
		&res.InReplyTo, &res.Score)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) AddPost(accountId int, post *Post) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO posts (account_id, status_id, content, published, in_reply_to)
		VALUES(?, ?, ?, ?, ?)`,
		accountId, post.StatusId, post.Content, post.Published, post.InReplyTo)
	if err != nil {
		return err
	}
	return nil
}

func (repo *Repo) GetPostByStatusId(statusId string) (*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+postCols+` FROM posts WHERE status_id=?`, statusId)
	res, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetPostCount(user string) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM posts JOIN accounts
		ON posts.account_id=accounts.id AND accounts.handle=?`, user)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) GetPostsByUser(user string, limit int) ([]*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+postCols+` FROM posts JOIN accounts
		ON posts.account_id=accounts.id AND accounts.handle=?
		ORDER BY posts.published DESC LIMIT ?`, user, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readPosts(rows)
}

// Posts ranked by reaction score, ties broken by recency.
func (repo *Repo) GetTopPosts(limit int) ([]*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+postCols+` FROM posts
		ORDER BY score DESC, posts.published DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readPosts(rows)
}

func (repo *Repo) GetReplies(statusId string) ([]*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+postCols+` FROM posts WHERE in_reply_to=?
		ORDER BY posts.published ASC, posts.id ASC`, statusId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readPosts(rows)
}

func readPosts(rows *sql.Rows) ([]*Post, error) {
	res := make([]*Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// One reaction per reactor per post; reacting again replaces the old value.
func (repo *Repo) SetReaction(postId int, reactor string, value int, when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO reactions (post_id, reactor, val, reacted_at)
		VALUES(?, ?, ?, ?)
		ON CONFLICT DO UPDATE SET val=excluded.val, reacted_at=excluded.reacted_at`,
		postId, reactor, value, when)
	return err
}

func (repo *Repo) AddFeedPostIfNew(accountId int, post *FeedPost) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	err = nil

	_, err = repo.db.Exec(`INSERT INTO feed_posts
    	(account_id, post_guid_hash, post_time, link, title)
		VALUES (?, ?, ?, ?, ?)`,
		accountId, post.PostGuidHash, post.PostTime, post.Link, post.Title)

	if err == nil {
		isNew = true
		return
	}

	// Duplicate key: feed post for this account+guid_hash already exists
	if isDuplicateKey(err) {
		isNew = false
		err = nil
		return
	}

	return
}

func (repo *Repo) GetFeedLastUpdated(accountId int) (res time.Time, err error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	res = time.Time{}
	err = nil
	row := repo.db.QueryRow("SELECT feed_last_updated FROM accounts WHERE id=?", accountId)
	if err = row.Scan(&res); err != nil {
		return
	}
	return
}

func (repo *Repo) AddQueueItem(item *DeliveryQueueItem) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO delivery_queue (sending_user, to_inbox, published, status_id, content)
		VALUES(?, ?, ?, ?, ?)`,
		item.SendingUser, item.ToInbox, item.Published, item.StatusId, item.Content)
	return err
}

func (repo *Repo) GetQueueItems(aboveId, maxCount int) ([]*DeliveryQueueItem, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var qlen int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM delivery_queue`)
	if err := row.Scan(&qlen); err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(`SELECT id, sending_user, to_inbox, published, status_id, content
		FROM delivery_queue WHERE id>? ORDER BY id ASC LIMIT ?`, aboveId, maxCount)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	res := make([]*DeliveryQueueItem, 0, maxCount)
	for rows.Next() {
		item := DeliveryQueueItem{}
		err = rows.Scan(&item.Id, &item.SendingUser, &item.ToInbox, &item.Published, &item.StatusId, &item.Content)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, qlen, nil
}

func (repo *Repo) DeleteQueueItem(id int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM delivery_queue WHERE id=?`, id)
	return err
}

func (repo *Repo) MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	alreadyHandled = false
	err = nil

	_, err = repo.db.Exec(`INSERT INTO handled_activities VALUES (?, ?)`, id, when)

	if err == nil {
		return
	}

	// Duplicate key: activity was handled before
	if isDuplicateKey(err) {
		alreadyHandled = true
		err = nil
		return
	}

	return
}
