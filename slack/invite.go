package slack

import (
	"github.com/pkg/errors"
)

// AlreadyMemberText is posted when an invited user is already in the channel
const AlreadyMemberText = "is already a member of this channel"

// Ref addresses a user or a channel either by ID or by name
type Ref struct {
	ID   string
	Name string
}

// Invite adds the user to the channel, resolving names to IDs when needed.
// ErrNotFound is returned if either of them can't be resolved.
func (c *Client) Invite(user, channel Ref) (*Channel, error) {
	userID := user.ID
	if userID == "" {
		u, err := c.FindUser(user.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to find user %s", user.Name)
		}
		userID = u.ID
	}

	chanID := channel.ID
	if chanID == "" {
		ch, err := c.FindChannel(channel.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to find channel %s", channel.Name)
		}
		chanID = ch.ID
	}

	return c.invite(userID, chanID)
}

// InviteAndNotify adds the user to the channel.
// When the user is already a member, a mention is posted into the channel and notified is true,
// unless the user is the service account itself.
func (c *Client) InviteAndNotify(user User, channel Channel) (notified bool, err error) {
	_, err = c.invite(user.ID, channel.ID)
	switch {
	case err == nil:
		return false, nil
	case IsAPIError(err, ErrCodeCantInviteSelf):
		// only returned for the token owner, same as a member service account
		return false, nil
	case IsAPIError(err, ErrCodeAlreadyInChannel):
		serviceID, err := c.resolveServiceUserID()
		if err != nil {
			return false, errors.Wrap(err, "unable to resolve service account")
		}
		if user.ID == serviceID {
			return false, nil
		}
	default:
		return false, err
	}

	c.log.WithField("user", user.ID).WithField("channel", channel.ID).Infoln("User is already in the channel")
	if _, err = c.PostMention(channel.ID, user.ID, AlreadyMemberText); err != nil {
		return false, errors.Wrap(err, "unable to post membership notice")
	}
	return true, nil
}

// resolveServiceUserID returns the configured service account ID or asks auth.test for it
func (c *Client) resolveServiceUserID() (string, error) {
	if c.serviceUserID != "" {
		return c.serviceUserID, nil
	}
	id, err := c.AuthTest()
	if err != nil {
		return "", err
	}
	return id.UserID, nil
}

func (c *Client) invite(userID, chanID string) (*Channel, error) {
	var resp channelResponse
	params := map[string]string{"channel": chanID, "users": userID}
	if err := c.call(methodPOST, conversationsInviteMethod, params, &resp); err != nil {
		return nil, errors.Wrapf(err, "unable to invite user %s to channel %s", userID, chanID)
	}
	return &resp.Channel, nil
}
