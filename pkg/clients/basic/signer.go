package basic

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/utils"
)

// Headers is the set of auth headers for one signed request.
// Keys keep the exact casing the loan API documents.
type Headers map[string]string

// Apply copies the headers onto req without canonicalizing the keys.
func (h Headers) Apply(req *http.Request) {
	for k, v := range h {
		req.Header[k] = []string{v}
	}
}

// Signer produces HMAC-SHA512 signature headers for the loan API.
// Nonces are generated fresh per call and never tracked locally.
type Signer struct {
	userID string
	apiKey string
	now    func() time.Time
	nonce  func() string
}

// SignerOption configures a Signer.
type SignerOption func(*Signer)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) SignerOption {
	return func(s *Signer) {
		s.now = now
	}
}

// WithNonceSource overrides nonce generation.
func WithNonceSource(nonce func() string) SignerOption {
	return func(s *Signer) {
		s.nonce = nonce
	}
}

// NewSigner creates a signer for the given account credentials.
// Missing credentials are reported by Sign, not here.
func NewSigner(userID, apiKey string, opts ...SignerOption) *Signer {
	s := &Signer{
		userID: userID,
		apiKey: apiKey,
		now:    time.Now,
		nonce:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CanonicalURL lower-cases host and path and re-encodes the query from its
// parsed pairs. The scheme is dropped and "?" is only present when the
// query is non-empty. Canonicalizing a canonical URL returns it unchanged.
func CanonicalURL(rawURL string) (string, error) {
	if !strings.Contains(rawURL, "://") && !strings.HasPrefix(rawURL, "//") {
		rawURL = "//" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("error parsing url: %w", err)
	}
	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", fmt.Errorf("error parsing query: %w", err)
	}

	canonical := strings.ToLower(u.Host) + strings.ToLower(u.EscapedPath())
	if encoded := query.Encode(); encoded != "" {
		canonical += "?" + encoded
	}
	return canonical, nil
}

// Sign returns the auth headers for a request. body is the exact JSON sent
// on the wire, nil when the request has none.
func (s *Signer) Sign(rawURL, method string, body []byte) (Headers, error) {
	if s.userID == "" || s.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeConfiguration,
			"BASIC_APPLICATION_USER_ID and BASIC_APPLICATION_API_KEY must be configured in environment variables")
	}

	canonical, err := CanonicalURL(rawURL)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "error canonicalizing url")
	}

	timestamp := strconv.FormatInt(s.now().Unix(), 10)
	nonce := s.nonce()
	message := s.userID + timestamp + canonical + strings.ToLower(method) + nonce + utils.MD5Hex(body)

	return Headers{
		"accept":           "text/plain",
		"Content-Type":     "application/json-patch+json",
		"UserId":           s.userID,
		"CurrentTimestamp": timestamp,
		"Nonce":            nonce,
		"Authorization":    "Signature " + s.signature(message),
	}, nil
}

func (s *Signer) signature(message string) string {
	mac := hmac.New(sha512.New, []byte(s.apiKey))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
