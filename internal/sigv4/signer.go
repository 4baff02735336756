package sigv4

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/auth"

	"github.com/monejava/neptune-demo/internal/types"
)

const (
	// ServiceName is the SigV4 signing name of Neptune.
	ServiceName = "neptune-db"

	// SignedPath is the request path Neptune expects in a Bolt signature.
	SignedPath = "/opencypher"

	// TokenLifetime is how long a signature is reused before the token manager re-signs.
	// Neptune rejects signatures older than five minutes.
	TokenLifetime = 4 * time.Minute

	// hex(sha256("")), the payload hash of a bodiless GET
	emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

// signedHeader is the JSON object carried in the auth token's credentials field.
type signedHeader struct {
	Authorization string `json:"Authorization"`
	HTTPMethod    string `json:"HttpMethod"`
	AmzDate       string `json:"X-Amz-Date"`
	Host          string `json:"Host"`
	SecurityToken string `json:"X-Amz-Security-Token,omitempty"`
}

// Option customizes a Signer.
type Option func(*Signer)

// WithClock replaces time.Now as the signing clock.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// Signer produces SigV4-signed Bolt auth tokens for one Neptune endpoint.
type Signer struct {
	region      string
	endpoint    string
	credentials aws.CredentialsProvider
	signer      *v4.Signer
	now         func() time.Time
}

// NewSigner creates a Signer for the HTTPS endpoint (https://host:port) in region.
// Credentials are retrieved from provider each time a signature is produced.
func NewSigner(region, endpoint string, provider aws.CredentialsProvider, opts ...Option) (*Signer, error) {
	if region == "" {
		return nil, types.NewError(ErrCodeInvalidSigner, "region cannot be empty")
	}
	if provider == nil {
		return nil, types.NewError(ErrCodeInvalidSigner, "credentials provider cannot be nil")
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return nil, types.WrapError(ErrCodeInvalidSigner, "invalid endpoint: "+endpoint, err)
	}

	s := &Signer{
		region:      region,
		endpoint:    strings.TrimSuffix(u.String(), "/"),
		credentials: provider,
		signer:      v4.NewSigner(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SignedHeader signs a GET request for the endpoint's /opencypher path and returns the
// resulting headers serialized as JSON.
func (s *Signer) SignedHeader(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+SignedPath, nil)
	if err != nil {
		return "", types.WrapError(types.SIGNING_FAILED, "failed to build signing request", err)
	}

	creds, err := s.credentials.Retrieve(ctx)
	if err != nil {
		return "", types.WrapError(types.CREDENTIAL_UNAVAILABLE, "failed to retrieve AWS credentials", err)
	}
	if !creds.HasKeys() {
		return "", types.NewError(types.CREDENTIAL_INVALID, "AWS credentials have no access key or secret key")
	}

	if err := s.signer.SignHTTP(ctx, creds, req, emptyPayloadHash, ServiceName, s.region, s.now().UTC()); err != nil {
		return "", types.WrapError(types.SIGNING_FAILED, "failed to sign request", err)
	}

	header := signedHeader{
		Authorization: req.Header.Get("Authorization"),
		HTTPMethod:    req.Method,
		AmzDate:       req.Header.Get("X-Amz-Date"),
		Host:          req.Host,
		SecurityToken: req.Header.Get("X-Amz-Security-Token"),
	}

	data, err := json.Marshal(header)
	if err != nil {
		return "", types.WrapError(types.SIGNING_FAILED, "failed to encode signed headers", err)
	}
	return string(data), nil
}

// AuthToken returns a freshly signed Bolt auth token: scheme "basic", principal
// "username", the signed headers as credentials and realm "realm".
func (s *Signer) AuthToken(ctx context.Context) (neo4j.AuthToken, error) {
	header, err := s.SignedHeader(ctx)
	if err != nil {
		return neo4j.AuthToken{}, err
	}
	return neo4j.CustomAuth("basic", "username", header, "realm", nil), nil
}

// TokenManager returns a driver token manager that signs on first use and again once
// the previous token is older than TokenLifetime, or when the server rejects it.
func (s *Signer) TokenManager() auth.TokenManager {
	return auth.BearerTokenManager(func(ctx context.Context) (neo4j.AuthToken, *time.Time, error) {
		token, err := s.AuthToken(ctx)
		if err != nil {
			return neo4j.AuthToken{}, nil, err
		}
		expiresAt := s.now().Add(TokenLifetime)
		return token, &expiresAt, nil
	})
}
