package slack

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type listResponse struct {
	response
	Channels         []Channel        `json:"channels"`
	Members          []User           `json:"members"`
	ResponseMetadata responseMetadata `json:"response_metadata"`
}

// listing describes a cursor-paginated list method
type listing[T any] struct {
	method string
	params map[string]string
	items  func(*listResponse) []T
	match  func(item *T, name string) bool
}

// search walks the listing page by page and returns the first item matching the name.
// Pages are scanned independently, a match stops the walk.
func search[T any](c *Client, l listing[T], name string) (*T, error) {
	cursor := ""
	for page := 1; ; page++ {
		if page > c.maxPages {
			c.log.WithField("method", l.method).WithField("name", name).
				Warnf("Stopped searching after %d pages", c.maxPages)
			return nil, ErrSearchExhausted
		}

		params := map[string]string{"limit": strconv.Itoa(c.pageLimit)}
		for k, v := range l.params {
			params[k] = v
		}
		if cursor != "" {
			params["cursor"] = cursor
		}

		var resp listResponse
		if err := c.call(methodGET, l.method, params, &resp); err != nil {
			return nil, err
		}

		items := l.items(&resp)
		for i := range items {
			if l.match(&items[i], name) {
				return &items[i], nil
			}
		}

		if cursor = resp.ResponseMetadata.NextCursor; cursor == "" {
			return nil, ErrNotFound
		}
	}
}

// FindChannel returns the channel with the provided name.
// The name is canonicalized first, see CanonicalChannelName.
func (c *Client) FindChannel(name string) (*Channel, error) {
	if name = CanonicalChannelName(name); name == "" {
		return nil, errors.New("channel name can't be empty")
	}
	return search(c, listing[Channel]{
		method: conversationsListMethod,
		params: map[string]string{"types": c.channelTypes},
		items:  func(r *listResponse) []Channel { return r.Channels },
		match: func(ch *Channel, name string) bool {
			return strings.EqualFold(ch.Name, name)
		},
	}, name)
}

// FindUser returns the user whose display name or handle is equal to the name.
// The display name is checked first.
func (c *Client) FindUser(name string) (*User, error) {
	if name = strings.TrimPrefix(strings.TrimSpace(name), "@"); name == "" {
		return nil, errors.New("user name can't be empty")
	}
	return search(c, listing[User]{
		method: usersListMethod,
		items:  func(r *listResponse) []User { return r.Members },
		match: func(u *User, name string) bool {
			return strings.EqualFold(u.DisplayName(), name) || strings.EqualFold(u.Name, name)
		},
	}, name)
}
