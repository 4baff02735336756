package demo

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/auth"

	"github.com/monejava/neptune-demo/internal/config"
	"github.com/monejava/neptune-demo/internal/dataapi"
	"github.com/monejava/neptune-demo/internal/graph"
	"github.com/monejava/neptune-demo/internal/sigv4"
	"github.com/monejava/neptune-demo/internal/types"
	"github.com/monejava/neptune-demo/pkg/version"
)

// NewClient builds the client for kind from cfg. It does not connect.
func NewClient(ctx context.Context, cfg *config.Config, kind Kind) (graph.GraphClient, error) {
	switch kind {
	case KindBolt:
		return NewBoltClient(ctx, cfg)
	case KindDataAPI:
		return NewDataAPIClient(ctx, cfg)
	default:
		_, err := ParseKind(string(kind))
		return nil, err
	}
}

// Endpoint returns the URI the client for kind talks to.
func Endpoint(cfg *config.Config, kind Kind) string {
	if kind == KindDataAPI {
		return cfg.Neptune.HTTPSURI()
	}
	return cfg.Neptune.BoltURI()
}

// NewBoltClient builds a Bolt client. With IAM auth enabled every new connection
// presents a SigV4 signature; otherwise no authentication is sent.
func NewBoltClient(ctx context.Context, cfg *config.Config) (*graph.BoltClient, error) {
	tokens, err := boltAuth(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gc := graph.DefaultConfig()
	gc.URI = cfg.Neptune.BoltURI()
	gc.Auth = tokens
	gc.ConnectionTimeout = cfg.Neptune.ConnectionTimeout
	gc.UserAgent = version.UserAgent()

	return graph.NewBoltClient(gc)
}

func boltAuth(ctx context.Context, cfg *config.Config) (auth.TokenManager, error) {
	if !cfg.Neptune.IAMAuth {
		return neo4j.NoAuth(), nil
	}

	provider, err := cfg.AWS.CredentialsProvider(ctx)
	if err != nil {
		return nil, err
	}

	signer, err := sigv4.NewSigner(cfg.AWS.Region, cfg.Neptune.HTTPSURI(), provider)
	if err != nil {
		return nil, types.WrapError(ErrCodeClientCreate, "failed to create SigV4 signer", err)
	}
	return signer.TokenManager(), nil
}

// NewDataAPIClient builds a Data API client for the cluster's HTTPS endpoint.
func NewDataAPIClient(ctx context.Context, cfg *config.Config) (*dataapi.Client, error) {
	sdkCfg, err := cfg.SDKConfig(ctx)
	if err != nil {
		return nil, err
	}
	return dataapi.New(sdkCfg, cfg.Neptune.HTTPSURI(), cfg.Neptune.IAMAuth)
}
