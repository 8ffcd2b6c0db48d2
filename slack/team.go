package slack

import (
	"github.com/pkg/errors"
)

// Team returns info about the workspace the token belongs to
func (c *Client) Team() (*Team, error) {
	var resp struct {
		response
		Team Team `json:"team"`
	}

	if err := c.call(methodGET, teamInfoMethod, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "unable to get team info")
	}
	return &resp.Team, nil
}

// ChannelLink returns the browser URL of the channel
func ChannelLink(team *Team, channel *Channel) string {
	return "https://" + team.Domain + ".slack.com/archives/" + channel.ID
}

// AuthTest returns the identity of the token owner
func (c *Client) AuthTest() (*Identity, error) {
	var resp struct {
		response
		Identity
	}

	if err := c.call(methodGET, authTestMethod, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "unable to check authentication")
	}
	return &resp.Identity, nil
}
