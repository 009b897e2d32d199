// Package fmcsa looks up motor carrier authority records from the FMCSA
// QCMobile service by MC (docket) number.
package fmcsa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/timeouts"
)

const defaultBaseURL = "https://mobile.fmcsa.dot.gov/qc/services"

var (
	// ErrNotFound means the registry has no carrier for the docket number.
	ErrNotFound = errors.New("fmcsa: carrier not found")
	// ErrUnavailable means the registry could not be reached or answered
	// with garbage.
	ErrUnavailable = errors.New("fmcsa: service unavailable")
	// ErrWebKeyMissing means the client was built without a web key.
	ErrWebKeyMissing = errors.New("fmcsa: web key is not configured")
)

// Carrier is the normalized view of a registry lookup.
type Carrier struct {
	MC              string `json:"mc"`
	DOTNumber       string `json:"dot_number,omitempty"`
	CarrierName     string `json:"carrier_name,omitempty"`
	PhysicalState   string `json:"physical_state,omitempty"`
	AuthorityStatus string `json:"authority_status,omitempty"`
	Eligible        bool   `json:"eligible"`
}

// Client queries the FMCSA QCMobile API.
type Client struct {
	webKey  string
	baseURL string
	httpc   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the registry endpoint, used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// New builds a Client. The web key may be empty; lookups then fail with
// ErrWebKeyMissing so a misconfigured deployment surfaces clearly.
func New(webKey string, opts ...Option) *Client {
	c := &Client{
		webKey:  strings.TrimSpace(webKey),
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: timeouts.RegistryLookup},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CarrierByMC fetches and normalizes the carrier record for an MC number.
func (c *Client) CarrierByMC(ctx context.Context, mc string) (*Carrier, error) {
	mc = strings.TrimSpace(mc)
	if mc == "" {
		return nil, fmt.Errorf("mc number is required")
	}
	if c.webKey == "" {
		return nil, ErrWebKeyMissing
	}

	endpoint := fmt.Sprintf("%s/carriers/docket-number/%s?webKey=%s",
		c.baseURL, url.PathEscape(mc), url.QueryEscape(c.webKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: mc %s", ErrNotFound, mc)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: registry returned %d", ErrUnavailable, resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: registry returned %d", ErrUnavailable, resp.StatusCode)
	}

	return parseCarrier(payload, mc)
}

func parseCarrier(payload any, mc string) (*Carrier, error) {
	root := payload
	if m, ok := payload.(map[string]any); ok {
		if content, ok := m["content"]; ok && content != nil {
			root = content
		}
	}

	block := findCarrierBlock(root)
	if len(block) == 0 {
		return nil, fmt.Errorf("%w: mc %s", ErrNotFound, mc)
	}

	status := authorityStatus(block)
	return &Carrier{
		MC: mc,
		DOTNumber: firstString(block,
			"usdotNumber", "usDotNumber", "dotNumber", "US_DOT"),
		CarrierName: firstString(block,
			"legalName", "carrierName", "dbaName"),
		PhysicalState: firstString(block,
			"phyState", "physicalState", "phyStateCode"),
		AuthorityStatus: status,
		Eligible:        eligible(block, status),
	}, nil
}

// carrierFieldKeys marks an object as a carrier block when any key matches.
var carrierFieldKeys = map[string]bool{
	"usdotnumber":          true,
	"usdornumber":          true,
	"dotnumber":            true,
	"legalname":            true,
	"carriername":          true,
	"dba":                  true,
	"operatingstatus":      true,
	"authoritystatus":      true,
	"authoritydescription": true,
	"operatingstatusdesc":  true,
}

// findCarrierBlock walks the payload for the first object that either sits
// under a "carrier" key or carries carrier-shaped fields. The registry nests
// its answers inconsistently across endpoints.
func findCarrierBlock(payload any) map[string]any {
	switch v := payload.(type) {
	case map[string]any:
		if carrier, ok := v["carrier"].(map[string]any); ok && len(carrier) > 0 {
			return carrier
		}
		for key := range v {
			if carrierFieldKeys[strings.ToLower(key)] {
				return v
			}
		}
		for _, value := range v {
			if found := findCarrierBlock(value); found != nil {
				return found
			}
		}
	case []any:
		for _, item := range v {
			if found := findCarrierBlock(item); found != nil {
				return found
			}
		}
	}
	return nil
}

func firstString(block map[string]any, keys ...string) string {
	for _, key := range keys {
		if text := stringField(block, key); text != "" {
			return text
		}
	}
	return ""
}

func stringField(block map[string]any, key string) string {
	value, ok := block[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

var statusCodeNames = map[string]string{
	"a": "Active",
	"i": "Inactive",
	"n": "Inactive",
	"o": "Out of Service",
	"s": "Suspended",
	"v": "Inactive (voluntary)",
	"p": "Pending",
	"r": "Revoked",
}

func expandStatusCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	if name, ok := statusCodeNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

func interpretAllowedFlag(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	switch strings.ToLower(value) {
	case "y", "yes", "true", "1":
		return "Allowed to operate"
	case "n", "no", "false", "0":
		return "Not allowed to operate"
	}
	return "Allowed to operate: " + value
}

// authorityStatus joins the registry's scattered status fields into one
// human-readable summary.
func authorityStatus(block map[string]any) string {
	var fragments []string

	descriptive := []string{
		"operatingStatus", "authorityStatus",
		"authorityDescription", "operatingStatusDesc",
	}
	for _, key := range descriptive {
		if text := stringField(block, key); text != "" {
			fragments = append(fragments, text)
			break
		}
	}

	codes := []struct{ label, key string }{
		{"Status", "statusCode"},
		{"Common", "commonAuthorityStatus"},
		{"Contract", "contractAuthorityStatus"},
		{"Broker", "brokerAuthorityStatus"},
	}
	for _, c := range codes {
		if expanded := expandStatusCode(stringField(block, c.key)); expanded != "" {
			fragments = append(fragments, c.label+": "+expanded)
		}
	}

	if allowed := interpretAllowedFlag(stringField(block, "allowedToOperate")); allowed != "" {
		fragments = append(fragments, allowed)
	}

	var unique []string
	seen := map[string]bool{}
	for _, f := range fragments {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}
	return strings.Join(unique, "; ")
}

func statusTextIndicatesActive(status string) bool {
	if status == "" {
		return false
	}
	s := strings.ToLower(status)
	if strings.Contains(s, "inactive") || strings.Contains(s, "revoked") {
		return false
	}
	if strings.Contains(s, "not") && strings.Contains(s, "authorized") {
		return false
	}
	return strings.Contains(s, "active") ||
		strings.Contains(s, "authorized") ||
		strings.Contains(s, "allowed")
}

func eligible(block map[string]any, status string) bool {
	if statusTextIndicatesActive(status) {
		return true
	}

	switch strings.ToLower(stringField(block, "allowedToOperate")) {
	case "y", "yes", "true", "1":
		return true
	}

	codeKeys := []string{
		"statusCode", "commonAuthorityStatus",
		"contractAuthorityStatus", "brokerAuthorityStatus",
	}
	for _, key := range codeKeys {
		code := strings.ToLower(stringField(block, key))
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, "a") || code == "yes" {
			return true
		}
		if strings.HasPrefix(code, "i") ||
			strings.HasPrefix(code, "r") ||
			strings.HasPrefix(code, "s") {
			return false
		}
	}
	return false
}
