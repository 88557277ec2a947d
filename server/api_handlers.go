package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"warble/dal"
	"warble/dto"
	"warble/logic"
	"warble/shared"
)

const defaultTopPostLimit = 20

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	repo      dal.IRepo
	udir      logic.IUserDirectory
	publisher logic.IPublisher
	bridge    logic.IFeedBridge
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
	udir logic.IUserDirectory,
	publisher logic.IPublisher,
	bridge logic.IFeedBridge,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		repo:      repo,
		udir:      udir,
		publisher: publisher,
		bridge:    bridge,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/users", func(w http.ResponseWriter, r *http.Request) { hg.postUsers(w, r) }},
		{"POST", "/posts", func(w http.ResponseWriter, r *http.Request) { hg.postPosts(w, r) }},
		{"GET", "/posts/top", func(w http.ResponseWriter, r *http.Request) { hg.getTopPosts(w, r) }},
		{"GET", "/posts/thread", func(w http.ResponseWriter, r *http.Request) { hg.getThread(w, r) }},
		{"POST", "/posts/reactions", func(w http.ResponseWriter, r *http.Request) { hg.postReactions(w, r) }},
		{"GET", "/stream", func(w http.ResponseWriter, r *http.Request) { hg.getStream(w, r) }},
		{"POST", "/feeds", func(w http.ResponseWriter, r *http.Request) { hg.postFeeds(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) postUsers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/users: Request received")
	obs := hg.metrics.StartApiRequestIn("users")
	defer obs.Finish()

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req dto.NewUserReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}
	if req.Handle == "" {
		writeErrorResponse(w, "Field 'handle' must not be empty", http.StatusBadRequest)
		return
	}

	acct, err := hg.udir.RegisterUser(req.Handle, req.Name, req.Summary)
	if err != nil {
		hg.logger.Errorf("Failed to register user '%s': %v", req.Handle, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, "User already exists", http.StatusConflict)
		return
	}

	writeJsonResponse(hg.logger, w, map[string]string{
		"handle":   acct.Handle,
		"user_url": acct.UserUrl,
	})
}

func (hg *apiHandlerGroup) postPosts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/posts: Request received")
	obs := hg.metrics.StartApiRequestIn("posts")
	defer obs.Finish()

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req dto.NewPostReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}
	if req.Author == "" || req.Content == "" {
		writeErrorResponse(w, "Fields 'author' and 'content' must not be empty", http.StatusBadRequest)
		return
	}

	resp, err := hg.publisher.CreatePost(req.Author, req.Content, req.InReplyTo)
	if err != nil {
		hg.logger.Infof("Failed to create post by '%s': %v", req.Author, err)
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getTopPosts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling top posts GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/top")
	defer obs.Finish()

	limit := defaultTopPostLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 {
			writeErrorResponse(w, "Invalid 'limit' param", http.StatusBadRequest)
			return
		}
		limit = val
	}

	posts, err := hg.publisher.GetTopPosts(limit)
	if err != nil {
		hg.logger.Errorf("Failed to get top posts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	writeJsonResponse(hg.logger, w, posts)
}

func (hg *apiHandlerGroup) getThread(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling thread GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/thread")
	defer obs.Finish()

	statusId := r.URL.Query().Get("id")
	if statusId == "" {
		writeErrorResponse(w, "Missing 'id' param", http.StatusBadRequest)
		return
	}

	thread, err := hg.publisher.GetThread(statusId)
	if err != nil {
		hg.logger.Errorf("Failed to get thread %s: %v", statusId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if thread == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, thread)
}

func (hg *apiHandlerGroup) postReactions(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/posts/reactions: Request received")
	obs := hg.metrics.StartApiRequestIn("posts/reactions")
	defer obs.Finish()

	statusId := r.URL.Query().Get("id")
	if statusId == "" {
		writeErrorResponse(w, "Missing 'id' param", http.StatusBadRequest)
		return
	}

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req dto.ReactionReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}

	if err := hg.publisher.React(statusId, req.Reactor, req.Value); err != nil {
		hg.logger.Infof("Failed to record reaction on %s: %v", statusId, err)
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJsonResponse(hg.logger, w, "OK")
}

// Feed of stored activities, newest first. 'after' is an exact activity id
// to page from; 'exclude' actors are filtered out.
func (hg *apiHandlerGroup) getStream(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling stream GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("stream")
	defer obs.Finish()

	limit := hg.cfg.StreamPageSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 {
			writeErrorResponse(w, "Invalid 'limit' param", http.StatusBadRequest)
			return
		}
		limit = val
	}
	after := r.URL.Query().Get("after")
	blockList := r.URL.Query()["exclude"]

	acts, err := hg.repo.GetStream("", limit, after, blockList, nil)
	if err != nil {
		hg.logger.Errorf("Failed to get stream: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	payloads := make([]map[string]any, 0, len(acts))
	for _, act := range acts {
		payloads = append(payloads, act.Payload)
	}
	writeJsonResponse(hg.logger, w, payloads)
}

func (hg *apiHandlerGroup) postFeeds(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/feeds: Request received")
	obs := hg.metrics.StartApiRequestIn("feeds")
	defer obs.Finish()

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req dto.NewBridgeFeedReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}
	if req.SiteUrl == "" {
		writeErrorResponse(w, "Field 'site_url' must not be empty", http.StatusBadRequest)
		return
	}

	acct, isNew, err := hg.bridge.GetAccountForFeed(req.SiteUrl)
	if err != nil {
		hg.logger.Infof("Failed to set up bridge for '%s': %v", req.SiteUrl, err)
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := dto.BridgeFeedResp{
		Handle:  acct.Handle,
		Name:    acct.Name,
		FeedUrl: acct.FeedUrl,
		UserUrl: acct.UserUrl,
		IsNew:   isNew,
	}
	writeJsonResponse(hg.logger, w, &resp)
}
