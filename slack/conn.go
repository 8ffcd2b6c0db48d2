package slack

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

// Slack URL consts
const (
	methodGET      = "GET"
	methodPOST     = "POST"
	contentEncoded = "application/x-www-form-urlencoded; charset=utf-8"

	// DefaultAPIURL is the Web API base URL used when Config.APIURL is empty
	DefaultAPIURL = "https://slack.com/api/"
)

// Web API methods
const (
	authTestMethod             = "auth.test"
	chatPostMessageMethod      = "chat.postMessage"
	conversationsArchiveMethod = "conversations.archive"
	conversationsCreateMethod  = "conversations.create"
	conversationsHistoryMethod = "conversations.history"
	conversationsInviteMethod  = "conversations.invite"
	conversationsListMethod    = "conversations.list"
	teamInfoMethod             = "team.info"
	usersListMethod            = "users.list"
)

// DefaultTimeout is the request timeout of HTTPTransport when none is set
const DefaultTimeout = 5 * time.Second

// Transport makes a single blocking HTTP request.
// Params are sent as the URL query string, never as a body.
type Transport interface {
	Do(method, url string, params, headers map[string]string) ([]byte, error)
}

// HTTPTransport is a Transport based on fasthttp
type HTTPTransport struct {
	Timeout time.Duration
	Client  *fasthttp.Client
}

// NewHTTPTransport returns a transport with the provided timeout
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{Timeout: timeout, Client: &fasthttp.Client{}}
}

// Do implements Transport
func (t *HTTPTransport) Do(method, url string, params, headers map[string]string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.Header.SetMethod(method)
	req.Header.SetContentType(contentEncoded)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	req.SetRequestURI(url)
	// sorted for a stable query string
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		req.URI().QueryArgs().Add(k, params[k])
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	client := t.Client
	if client == nil {
		client = &fasthttp.Client{}
	}
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if err := client.DoTimeout(req, resp, timeout); err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, url)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, errors.Errorf("%s %s: %d: %s", method, url, code, fasthttp.StatusMessage(code))
	}

	respBody := make([]byte, len(resp.Body()))
	copy(respBody, resp.Body())
	return respBody, nil
}
