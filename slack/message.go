package slack

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	slackgo "github.com/slack-go/slack"
)

// Message subtypes
const (
	SubtypeChannelJoin  = "channel_join"
	SubtypeChannelLeave = "channel_leave"
)

type (
	// Attachment is a legacy secondary message attachment
	Attachment = slackgo.Attachment
	// AttachmentField is a table field of the Attachment
	AttachmentField = slackgo.AttachmentField
)

// OutgoingMessage is the chat.postMessage payload.
// Only Channel is required, empty fields are not sent.
type OutgoingMessage struct {
	Channel     string
	Text        string
	Username    string
	IconEmoji   string
	IconURL     string
	AsUser      bool
	LinkNames   bool
	Parse       string
	ThreadTS    string
	Attachments []Attachment
}

func (m OutgoingMessage) params() (map[string]string, error) {
	params := map[string]string{"channel": m.Channel}
	set := func(k, v string) {
		if v != "" {
			params[k] = v
		}
	}
	set("text", m.Text)
	set("username", m.Username)
	set("icon_emoji", m.IconEmoji)
	set("icon_url", m.IconURL)
	set("parse", m.Parse)
	set("thread_ts", m.ThreadTS)
	if m.AsUser {
		params["as_user"] = "true"
	}
	if m.LinkNames {
		params["link_names"] = "1"
	}

	if len(m.Attachments) > 0 {
		b, err := json.Marshal(m.Attachments)
		if err != nil {
			return nil, errors.Wrap(err, "unable to marshal attachments")
		}
		params["attachments"] = string(b)
	}

	return params, nil
}

// PostMessage sends a message with Web API
func (c *Client) PostMessage(msg OutgoingMessage) (*PostResponse, error) {
	if msg.Channel == "" {
		return nil, errors.New("channel can't be empty")
	}

	params, err := msg.params()
	if err != nil {
		return nil, err
	}

	var resp struct {
		response
		PostResponse
	}
	if err = c.call(methodPOST, chatPostMessageMethod, params, &resp); err != nil {
		return nil, errors.Wrapf(err, "unable to post message to channel %s", msg.Channel)
	}

	return &resp.PostResponse, nil
}

// PostMention sends the text into the channel prefixed with a mention of the user.
// No mention is added if userID is empty.
func (c *Client) PostMention(chanID, userID, text string) (*PostResponse, error) {
	return c.PostMessage(OutgoingMessage{Channel: chanID, Text: MentionText(userID, text)})
}

// MentionText prefixes the text with a mention of the user, if any
func MentionText(userID, text string) string {
	if userID == "" {
		return text
	}
	return strings.TrimSpace("<@" + userID + "> " + text)
}

// Time parses the message timestamp
func (m Message) Time() (time.Time, error) {
	secs, frac, _ := strings.Cut(m.TS, ".")
	sec, err := strconv.ParseInt(secs, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp %q", m.TS)
	}

	var nsec int64
	if frac != "" {
		if strings.TrimLeft(frac, "0123456789") != "" {
			return time.Time{}, errors.Errorf("invalid timestamp %q", m.TS)
		}
		if len(frac) > 9 {
			frac = frac[:9]
		}
		frac += strings.Repeat("0", 9-len(frac))
		if nsec, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return time.Time{}, errors.Wrapf(err, "invalid timestamp %q", m.TS)
		}
	}

	return time.Unix(sec, nsec), nil
}

var mentionRe = regexp.MustCompile(`<@([UW][A-Z0-9]+)(?:\|([^>]*))?>`)

// Mentions returns the users referenced in the message text,
// e.g. "<@U0123|bob> has joined the channel" of a channel_join message.
func (m Message) Mentions() []Mention {
	matches := mentionRe.FindAllStringSubmatch(m.Text, -1)
	if len(matches) == 0 {
		return nil
	}

	mentions := make([]Mention, 0, len(matches))
	for _, match := range matches {
		mentions = append(mentions, Mention{UserID: match[1], Name: match[2]})
	}
	return mentions
}
