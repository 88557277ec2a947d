package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"warble/dal"
	"warble/logic"
	"warble/shared"
	"warble/test/mocks"
	"warble/texts"
)

func setupUserDirectoryTest(t *testing.T) (*mocks.MockIRepo, logic.IUserDirectory) {

	ctrl := gomock.NewController(t)

	cfg := &shared.Config{Host: localHost}
	cfg.Secrets.PrivKeyPass = "test-pass"
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockSender := mocks.NewMockIActivitySender(ctrl)
	keyStore := logic.NewKeyStore(cfg, mockRepo)

	udir := logic.NewUserDirectory(cfg, mockLogger, mockRepo, keyStore, mockSender, texts.NewTexts())
	return mockRepo, udir
}

func TestUserDirectory_RegisterUser(t *testing.T) {

	mockRepo, udir := setupUserDirectoryTest(t)

	mockRepo.EXPECT().AddAccountIfNotExist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(acct *dal.Account, privKey string) (bool, error) {
			assert.Equal(t, "pixie", acct.Handle)
			assert.Equal(t, "https://"+localHost+"/u/pixie", acct.UserUrl)
			assert.NotEmpty(t, acct.PubKey)
			assert.NotEmpty(t, privKey)
			return true, nil
		})

	acct, err := udir.RegisterUser("Pixie", "Pixie", "sparkly")
	require.Nil(t, err)
	require.NotNil(t, acct)
	assert.Equal(t, "pixie", acct.Handle)
}

func TestUserDirectory_RegisterUser_TakenHandle(t *testing.T) {

	mockRepo, udir := setupUserDirectoryTest(t)

	// Existing handle is a conflict, not a failure: nil account, nil error
	mockRepo.EXPECT().AddAccountIfNotExist(gomock.Any(), gomock.Any()).Return(false, nil)

	acct, err := udir.RegisterUser("pixie", "Pixie", "")
	require.Nil(t, err)
	assert.Nil(t, acct)
}
