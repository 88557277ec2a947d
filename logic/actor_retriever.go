package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"warble/dto"
	"warble/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_retriever.go -package mocks warble/logic IActorRetriever

// IActorRetriever fetches a remote actor document.
type IActorRetriever interface {
	Retrieve(userUrl string) (info *dto.UserInfo, err error)
}

type actorRetriever struct {
	cfg       *shared.Config
	userAgent shared.IUserAgent
}

func NewActorRetriever(cfg *shared.Config, userAgent shared.IUserAgent) IActorRetriever {
	return &actorRetriever{cfg, userAgent}
}

func (ar *actorRetriever) Retrieve(userUrl string) (info *dto.UserInfo, err error) {

	client := &http.Client{}
	var req *http.Request
	if req, err = http.NewRequest("GET", userUrl, nil); err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/activity+json, application/json")
	ar.userAgent.AddUserAgent(req)
	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user profile; got status %v", resp.StatusCode)
	}

	defer resp.Body.Close()
	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		return nil, err
	}

	var obj dto.UserInfo
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		return nil, err
	}

	return &obj, nil
}
