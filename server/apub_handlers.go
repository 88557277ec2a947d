package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gorilla/mux"

	"warble/dal"
	"warble/dto"
	"warble/logic"
	"warble/shared"
)

// Groups together the handlers needed to implement an ActivityPub server.
type apubHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	repo       dal.IRepo
	sigChecker logic.IHttpSigChecker
	udir       logic.IUserDirectory
	inbox      logic.IInbox
	idb        shared.IdBuilder
	reResource *regexp.Regexp
}

func NewApubHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
	sigChecker logic.IHttpSigChecker,
	udir logic.IUserDirectory,
	ibox logic.IInbox,
) IHandlerGroup {
	res := apubHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		repo:       repo,
		sigChecker: sigChecker,
		udir:       udir,
		inbox:      ibox,
		idb:        shared.IdBuilder{Host: cfg.Host},
	}
	res.reResource = regexp.MustCompile("^acct:([^@]+)@([^@]+)$")
	return &res
}

func (hg *apubHandlerGroup) Prefix() string {
	return ""
}

func (hg *apubHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/.well-known/webfinger", func(w http.ResponseWriter, r *http.Request) { hg.getWebfinger(w, r) }},
		{"GET", "/u/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUser(w, r) }},
		{"GET", "/u/{user}/outbox", func(w http.ResponseWriter, r *http.Request) { hg.getUserOutbox(w, r) }},
		{"GET", "/u/{user}/followers", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowers(w, r) }},
		{"GET", "/u/{user}/following", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowing(w, r) }},
		{"GET", "/u/{user}/status/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getUserStatus(w, r) }},
		{"POST", "/u/{user}/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
		{"POST", "/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
	}
}

func (hg *apubHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *apubHandlerGroup) getWebfinger(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webfinger GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("webfinger")
	defer obs.Finish()

	resourceParam := r.URL.Query().Get("resource")
	groups := hg.reResource.FindStringSubmatch(resourceParam)
	if groups == nil {
		hg.logger.Infof("Webfinger: Invalid request; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "Missing or invalid 'resource' param", http.StatusBadRequest)
		return
	}
	user, host := groups[1], groups[2]
	if host != hg.cfg.Host {
		hg.logger.Infof("Webfinger: Request for foreign host '%s'", host)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	resp := hg.udir.GetWebfinger(user)

	if resp == nil {
		hg.logger.Infof("Webfinger: No such resource; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getUser(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	if !acceptsJson(r) {
		profileUrl := hg.idb.UserProfile(userName)
		hg.logger.Infof("No application/json in accept header; redirecting to: '%s'", profileUrl)
		http.Redirect(w, r, profileUrl, http.StatusSeeOther)
		return
	}

	userInfo := hg.udir.GetUserInfo(userName)

	if userInfo == nil {
		hg.logger.Infof("Info requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, userInfo)
}

func (hg *apubHandlerGroup) getUserStatus(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user status GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/status")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	idStr := mux.Vars(r)["id"]
	idVal, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	obj, err := hg.repo.GetObject(hg.idb.UserStatus(userName, idVal))
	if err != nil {
		hg.logger.Errorf("Error retrieving status %s/%s: %v", userName, idStr, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if obj == nil {
		hg.logger.Infof("User status not found: %s/%s", userName, idStr)
		writeErrorResponse(w, "User or status not found", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, obj.Payload)
}

func (hg *apubHandlerGroup) getUserOutbox(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user outbox GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/outbox")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	summary := hg.udir.GetOutboxSummary(userName)
	if summary == nil {
		hg.logger.Infof("Outbox requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, summary)
}

func (hg *apubHandlerGroup) getUserFollowers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user followers GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/followers")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	summary := hg.udir.GetFollowersSummary(userName)
	if summary == nil {
		hg.logger.Infof("Followers requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, summary)
}

func (hg *apubHandlerGroup) getUserFollowing(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user following GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/following")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	summary := hg.udir.GetFollowingSummary(userName)
	if summary == nil {
		hg.logger.Infof("Following requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, summary)
}

func (hg *apubHandlerGroup) postInbox(w http.ResponseWriter, r *http.Request) {

	var err error
	hg.logger.Infof("Handling inbox POST: %s", r.URL.Path)
	userName := mux.Vars(r)["user"]

	if userName == "" {
		obs := hg.metrics.StartApubRequestIn("inbox")
		defer obs.Finish()
	} else {
		obs := hg.metrics.StartApubRequestIn("user/inbox")
		defer obs.Finish()
	}

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	if len(bodyBytes) == 0 {
		hg.logger.Info("Empty request body")
		writeErrorResponse(w, "Request body must not be empty", http.StatusBadRequest)
		return
	}

	// Parse a rudimentary version of the activity to learn the actor
	var act dto.ActivityInBase
	if err = json.Unmarshal(bodyBytes, &act); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v: %s", err, string(bodyBytes))
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}

	// Verify signature
	var senderInfo *dto.UserInfo
	var sigProblem string
	senderInfo, sigProblem, err = hg.sigChecker.Check(act.Actor, w, r)

	if err != nil {
		hg.logger.Errorf("Unexpected error trying to verify signature: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	if sigProblem != "" {
		if act.Type == "Delete" {
			hg.logger.Infof("Ignoring Delete request with unverified actor signature")
			writeJsonResponse(hg.logger, w, "OK")
		} else {
			hg.logger.Warnf("Incorrectly signed inbox POST request: %s", sigProblem)
			msg := fmt.Sprintf("Invalid HTTP signature: %s", sigProblem)
			writeErrorResponse(w, msg, http.StatusUnauthorized)
		}
		return
	}

	if senderInfo.Id != act.Actor {
		hg.logger.Warnf("Activity signed by %s, but actor is %s", senderInfo.Id, act.Actor)
		writeErrorResponse(w, "Signer does not match actor", http.StatusUnauthorized)
		return
	}

	// Processing swallows its own errors; a verified request is always a 200
	hg.inbox.Process(senderInfo, bodyBytes)

	writeJsonResponse(hg.logger, w, "OK")
}
