package remoteconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

const (
	apiBaseURL = "https://firebaseremoteconfig.googleapis.com/v1"
	apiScope   = "https://www.googleapis.com/auth/firebase.remoteconfig"
)

// ParameterValue is a Remote Config default value. Values are strings at
// rest regardless of the declared type.
type ParameterValue struct {
	Value           string `json:"value,omitempty"`
	UseInAppDefault *bool  `json:"useInAppDefault,omitempty"`
}

// Parameter is one named entry in the template's flat parameter map.
type Parameter struct {
	DefaultValue      *ParameterValue           `json:"defaultValue,omitempty"`
	ConditionalValues map[string]ParameterValue `json:"conditionalValues,omitempty"`
	Description       string                    `json:"description,omitempty"`
	ValueType         string                    `json:"valueType,omitempty"`
}

// Template is a fetched Remote Config template. Parameters is decoded for
// mutation; every other top-level field is kept raw so unrelated template
// content (conditions, parameter groups) survives a fetch-modify-publish
// cycle untouched.
type Template struct {
	Parameters map[string]Parameter
	ETag       string

	rest map[string]json.RawMessage
}

// NewTemplate returns an empty template that publishes with a forced ETag,
// used when the live template cannot be fetched.
func NewTemplate() *Template {
	return &Template{
		Parameters: map[string]Parameter{},
		ETag:       "*",
		rest:       map[string]json.RawMessage{},
	}
}

// SetParameter writes a default value for key, replacing any existing
// parameter definition.
func (t *Template) SetParameter(key, value, valueType string) {
	if t.Parameters == nil {
		t.Parameters = map[string]Parameter{}
	}
	t.Parameters[key] = Parameter{
		DefaultValue: &ParameterValue{Value: value},
		ValueType:    valueType,
	}
}

// ParameterValue returns the default value string for key.
func (t *Template) ParameterValue(key string) (string, bool) {
	p, ok := t.Parameters[key]
	if !ok || p.DefaultValue == nil {
		return "", false
	}
	return p.DefaultValue.Value, true
}

func (t *Template) body() ([]byte, error) {
	out := map[string]json.RawMessage{}
	for k, v := range t.rest {
		// The server rejects a template that echoes back its own
		// version metadata.
		if k == "version" {
			continue
		}
		out[k] = v
	}

	params, err := json.Marshal(t.Parameters)
	if err != nil {
		return nil, fmt.Errorf("error encoding template parameters: %w", err)
	}
	out["parameters"] = params

	return json.Marshal(out)
}

// Client talks to the Remote Config REST API with service-account
// credentials. The admin SDK for Go has no template publish support, so
// the template endpoints are called directly.
type Client struct {
	httpClient *http.Client
	projectID  string
	baseURL    string
}

func NewClient(ctx context.Context, projectID string, credentialsJSON []byte) (*Client, error) {
	httpClient, _, err := htransport.NewClient(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(apiScope),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating remote config HTTP client: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		projectID:  projectID,
		baseURL:    apiBaseURL,
	}, nil
}

func (c *Client) templateURL() string {
	return fmt.Sprintf("%s/projects/%s/remoteConfig", c.baseURL, c.projectID)
}

// GetTemplate fetches the live template and its ETag.
func (c *Client) GetTemplate(ctx context.Context) (*Template, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.templateURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching remote config template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("fetch", resp)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding remote config template: %w", err)
	}

	tpl := &Template{
		Parameters: map[string]Parameter{},
		ETag:       resp.Header.Get("ETag"),
		rest:       raw,
	}
	if tpl.ETag == "" {
		tpl.ETag = "*"
	}

	if params, ok := raw["parameters"]; ok {
		if err := json.Unmarshal(params, &tpl.Parameters); err != nil {
			return nil, fmt.Errorf("error decoding template parameters: %w", err)
		}
		delete(raw, "parameters")
	}

	return tpl, nil
}

// ValidateTemplate runs a dry-run publish against the server.
func (c *Client) ValidateTemplate(ctx context.Context, tpl *Template) error {
	_, err := c.put(ctx, tpl, true)
	return err
}

// PublishTemplate publishes the template, conditioned on the ETag it was
// fetched with. Last writer wins; a template started from scratch forces
// with ETag "*".
func (c *Client) PublishTemplate(ctx context.Context, tpl *Template) error {
	etag, err := c.put(ctx, tpl, false)
	if err != nil {
		return err
	}
	if etag != "" {
		tpl.ETag = etag
	}
	return nil
}

func (c *Client) put(ctx context.Context, tpl *Template, validateOnly bool) (string, error) {
	body, err := tpl.body()
	if err != nil {
		return "", err
	}

	url := c.templateURL()
	if validateOnly {
		url += "?validate_only=true"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	etag := tpl.ETag
	if etag == "" {
		etag = "*"
	}
	req.Header.Set("If-Match", etag)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error publishing remote config template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		action := "publish"
		if validateOnly {
			action = "validate"
		}
		return "", apiError(action, resp)
	}

	return resp.Header.Get("ETag"), nil
}

func apiError(action string, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error.Message != "" {
		return fmt.Errorf("remote config %s failed: %s", action, body.Error.Message)
	}
	return fmt.Errorf("remote config %s returned status: %d", action, resp.StatusCode)
}
