package shared

import (
	"fmt"
	"regexp"
	"strconv"
)

const ActivityPublic = "https://www.w3.org/ns/activitystreams#Public"

// IdBuilder mints every IRI this server hands out, and parses local user
// names back out of them.
type IdBuilder struct {
	Host string
}

var reLocalUser = regexp.MustCompile("^https://[^/]+/u/([^/#?]+)/?$")

// LocalUserName extracts the user name from a local actor or profile IRI.
// Returns false when the IRI does not point at a user on this host; callers
// are expected to treat that as "not one of ours", not as an error.
func (idb *IdBuilder) LocalUserName(iri string) (string, bool) {
	groups := reLocalUser.FindStringSubmatch(iri)
	if groups == nil {
		return "", false
	}
	hostName, err := GetHostName(iri)
	if err != nil || hostName != idb.Host {
		return "", false
	}
	return groups[1], true
}

func (idb *IdBuilder) SiteUrl() string {
	return fmt.Sprintf("https://%s", idb.Host)
}

func (idb *IdBuilder) SharedInbox() string {
	return fmt.Sprintf("https://%s/inbox", idb.Host)
}

func (idb *IdBuilder) ActivityUrl(id uint64) string {
	return fmt.Sprintf("https://%s/activity/%d", idb.Host, id)
}

func (idb *IdBuilder) UserUrl(user string) string {
	return fmt.Sprintf("https://%s/u/%s", idb.Host, user)
}

func (idb *IdBuilder) UserKeyId(user string) string {
	return fmt.Sprintf("https://%s/u/%s#main-key", idb.Host, user)
}

func (idb *IdBuilder) UserInbox(user string) string {
	return fmt.Sprintf("https://%s/u/%s/inbox", idb.Host, user)
}

func (idb *IdBuilder) UserOutbox(user string) string {
	return fmt.Sprintf("https://%s/u/%s/outbox", idb.Host, user)
}

func (idb *IdBuilder) UserFollowing(user string) string {
	return fmt.Sprintf("https://%s/u/%s/following", idb.Host, user)
}

func (idb *IdBuilder) UserFollowers(user string) string {
	return fmt.Sprintf("https://%s/u/%s/followers", idb.Host, user)
}

func (idb *IdBuilder) UserProfile(user string) string {
	return fmt.Sprintf("https://%s/web/users/%s", idb.Host, user)
}

func (idb *IdBuilder) UserStatus(user string, id uint64) string {
	idStr := strconv.FormatUint(id, 10)
	return fmt.Sprintf("https://%s/u/%s/status/%s", idb.Host, user, idStr)
}

func (idb *IdBuilder) UserStatusActivity(user string, id uint64) string {
	idStr := strconv.FormatUint(id, 10)
	return fmt.Sprintf("https://%s/u/%s/status/%s/activity", idb.Host, user, idStr)
}
