package slack

import (
	"strconv"

	"github.com/pkg/errors"
)

type channelResponse struct {
	response
	Channel Channel `json:"channel"`
}

// CreateChannel creates a new channel and returns it.
// If the name is already taken, the existing channel is returned instead.
func (c *Client) CreateChannel(name string, isPrivate bool) (*Channel, error) {
	if name = CanonicalChannelName(name); name == "" {
		return nil, errors.New("channel name can't be empty")
	}

	var resp channelResponse
	params := map[string]string{
		"name":       name,
		"is_private": strconv.FormatBool(isPrivate),
	}
	err := c.call(methodPOST, conversationsCreateMethod, params, &resp)
	if err == nil {
		return &resp.Channel, nil
	}
	if !IsAPIError(err, ErrCodeNameTaken) {
		return nil, errors.Wrapf(err, "unable to create channel %s", name)
	}

	c.log.Infof("Channel %s already exists, getting its ID...", name)
	ch, err := c.FindChannel(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to find existing channel %s", name)
	}
	return ch, nil
}

// ArchiveChannel archives the channel with the provided name
func (c *Client) ArchiveChannel(name string) error {
	ch, err := c.FindChannel(name)
	if err != nil {
		return errors.Wrapf(err, "unable to find channel %s", name)
	}

	var resp response
	params := map[string]string{"channel": ch.ID}
	if err = c.call(methodPOST, conversationsArchiveMethod, params, &resp); err != nil {
		return errors.Wrapf(err, "unable to archive channel %s", ch.ID)
	}
	return nil
}

// HistoryOptions bounds the history request. Zero values are not sent.
type HistoryOptions struct {
	// Count is the maximum number of messages to return
	Count int
	// Latest is the end of the time range, a message timestamp
	Latest string
	// Oldest is the start of the time range, a message timestamp
	Oldest string
	// Inclusive includes messages with Latest or Oldest timestamps
	Inclusive bool
}

func (o HistoryOptions) params() map[string]string {
	params := make(map[string]string)
	if o.Count > 0 {
		params["limit"] = strconv.Itoa(o.Count)
	}
	if o.Latest != "" {
		params["latest"] = o.Latest
	}
	if o.Oldest != "" {
		params["oldest"] = o.Oldest
	}
	if o.Inclusive {
		params["inclusive"] = "true"
	}
	return params
}

// History returns the messages of the channel with the provided ID in the API order
func (c *Client) History(chanID string, opts HistoryOptions) ([]Message, error) {
	var resp struct {
		response
		Messages []Message `json:"messages"`
		HasMore  bool      `json:"has_more"`
	}

	params := opts.params()
	params["channel"] = chanID
	if err := c.call(methodGET, conversationsHistoryMethod, params, &resp); err != nil {
		return nil, errors.Wrapf(err, "unable to get history of channel %s", chanID)
	}

	return resp.Messages, nil
}

// RoomHistory returns the messages of the channel with the provided name.
// ErrNotFound is returned if there's no such channel, API failures are returned as *APIError.
func (c *Client) RoomHistory(name string, opts HistoryOptions) ([]Message, error) {
	ch, err := c.FindChannel(name)
	if err != nil {
		return nil, err
	}
	return c.History(ch.ID, opts)
}
