package slack_test

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/nezorflame/slack-directory/slack"
)

const (
	testAPIURL = "https://slack.test/api/"
	testToken  = "xoxb-test"
)

type call struct {
	HTTPMethod string
	Method     string
	Params     map[string]string
}

type handler func(params map[string]string) (interface{}, error)

// fakeTransport answers API methods with canned JSON and records every call
type fakeTransport struct {
	routes map[string]handler
	calls  []call
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{routes: make(map[string]handler)}
}

func (f *fakeTransport) on(method string, h handler) *fakeTransport {
	f.routes[method] = h
	return f
}

func (f *fakeTransport) Do(httpMethod, url string, params, headers map[string]string) ([]byte, error) {
	method := strings.TrimPrefix(url, testAPIURL)
	p := make(map[string]string, len(params))
	for k, v := range params {
		p[k] = v
	}
	f.calls = append(f.calls, call{HTTPMethod: httpMethod, Method: method, Params: p})

	h, ok := f.routes[method]
	if !ok {
		return nil, errors.Errorf("unexpected method %s", method)
	}
	v, err := h(p)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		return []byte(s), nil
	}
	return json.Marshal(v)
}

func (f *fakeTransport) count(method string) int {
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *fakeTransport) last(method string) call {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Method == method {
			return f.calls[i]
		}
	}
	return call{}
}

func ok(fields map[string]interface{}) map[string]interface{} {
	fields["ok"] = true
	return fields
}

func fail(code string) map[string]interface{} {
	return map[string]interface{}{"ok": false, "error": code}
}

// pages serves the list pages in order, chaining them with cursors c1, c2...
func pages(t *testing.T, field string, pp ...[]interface{}) handler {
	return func(params map[string]string) (interface{}, error) {
		idx := 0
		if cursor := params["cursor"]; cursor != "" {
			n, err := strconv.Atoi(strings.TrimPrefix(cursor, "c"))
			if err != nil {
				t.Fatalf("unexpected cursor %q", cursor)
			}
			idx = n
		}
		if idx >= len(pp) {
			t.Fatalf("page %d requested, only %d available", idx+1, len(pp))
		}

		next := ""
		if idx+1 < len(pp) {
			next = "c" + strconv.Itoa(idx+1)
		}
		return ok(map[string]interface{}{
			field:               pp[idx],
			"response_metadata": map[string]string{"next_cursor": next},
		}), nil
	}
}

func newTestClient(t *testing.T, tr slack.Transport, cfg slack.Config) (*slack.Client, *test.Hook) {
	logger, hook := test.NewNullLogger()
	cfg.Token = testToken
	cfg.APIURL = testAPIURL
	c, err := slack.New(cfg, tr, logger)
	gt.NoError(t, err).Required()
	return c, hook
}

func channel(id, name string) map[string]interface{} {
	return map[string]interface{}{"id": id, "name": name}
}

func user(id, name, displayName string) map[string]interface{} {
	return map[string]interface{}{
		"id":      id,
		"name":    name,
		"profile": map[string]string{"display_name": displayName},
	}
}
