package slack

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Default Client settings
const (
	DefaultPageLimit    = 200
	DefaultMaxPages     = 100
	DefaultChannelTypes = "public_channel,private_channel"
)

// Config holds the Client settings
type Config struct {
	// Token is sent with every request
	Token string
	// APIURL is the Web API base URL, DefaultAPIURL if empty
	APIURL string
	// ServiceUserID is the user the token belongs to
	ServiceUserID string
	// PageLimit is the page size requested from list methods
	PageLimit int
	// MaxPages caps the pages fetched by a single lookup
	MaxPages int
	// ChannelTypes filters conversations.list
	ChannelTypes string
}

// Client calls the Slack Web API.
// It keeps no state between calls and is safe for concurrent use.
type Client struct {
	token         string
	apiURL        string
	serviceUserID string
	pageLimit     int
	maxPages      int
	channelTypes  string

	transport Transport
	log       logrus.FieldLogger
}

// New returns a new *Client. If log is nil, the standard logrus logger is used.
func New(cfg Config, transport Transport, log logrus.FieldLogger) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("token can't be empty")
	}
	if transport == nil {
		return nil, errors.New("must provide a transport")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	c := &Client{
		token:         cfg.Token,
		apiURL:        cfg.APIURL,
		serviceUserID: cfg.ServiceUserID,
		pageLimit:     cfg.PageLimit,
		maxPages:      cfg.MaxPages,
		channelTypes:  cfg.ChannelTypes,
		transport:     transport,
		log:           log,
	}
	if c.apiURL == "" {
		c.apiURL = DefaultAPIURL
	}
	if !strings.HasSuffix(c.apiURL, "/") {
		c.apiURL += "/"
	}
	if c.pageLimit <= 0 {
		c.pageLimit = DefaultPageLimit
	}
	if c.maxPages <= 0 {
		c.maxPages = DefaultMaxPages
	}
	if c.channelTypes == "" {
		c.channelTypes = DefaultChannelTypes
	}

	return c, nil
}

// ServiceUserID returns the ID of the integration's own user
func (c *Client) ServiceUserID() string {
	return c.serviceUserID
}

// call invokes the API method and decodes the response into v.
// An "ok": false response is logged and returned as *APIError.
func (c *Client) call(httpMethod, method string, params map[string]string, v enveloper) error {
	if params == nil {
		params = make(map[string]string, 1)
	}
	params["token"] = c.token

	log := c.log.WithField("method", method)
	log.Debugln("Calling Slack API")

	body, err := c.transport.Do(httpMethod, c.apiURL+method, params, nil)
	if err != nil {
		return errors.Wrapf(err, "unable to make %s request", httpMethod)
	}

	if err = json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "unable to unmarshal %s response", method)
	}

	r := v.envelope()
	if r.Warning != "" {
		log.WithField("warning", r.Warning).Debugln("Slack API warning")
	}
	if !r.OK {
		log.WithField("error", r.Error).Warnln("Slack API call failed")
		return &APIError{Method: method, Code: r.Error}
	}

	return nil
}
