package config

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsProvider_Static(t *testing.T) {
	tests := []struct {
		name      string
		cfg       AWSConfig
		wantToken string
	}{
		{
			name: "long-term credentials",
			cfg:  AWSConfig{Region: "us-east-1", AccessKey: "AKID", SecretKey: "SECRET"},
		},
		{
			name:      "temporary credentials",
			cfg:       AWSConfig{Region: "us-east-1", AccessKey: "ASIA", SecretKey: "SECRET", SessionToken: "TOKEN"},
			wantToken: "TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := tt.cfg.CredentialsProvider(context.Background())
			require.NoError(t, err)
			assert.IsType(t, credentials.StaticCredentialsProvider{}, provider)

			creds, err := provider.Retrieve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.AccessKey, creds.AccessKeyID)
			assert.Equal(t, tt.cfg.SecretKey, creds.SecretAccessKey)
			assert.Equal(t, tt.wantToken, creds.SessionToken)
		})
	}
}

func TestCredentialsProvider_DefaultChain(t *testing.T) {
	cfg := AWSConfig{Region: "us-east-1", AccessKey: "AKID"}

	provider, err := cfg.CredentialsProvider(context.Background())
	require.NoError(t, err)
	require.NotNil(t, provider)
	_, isStatic := provider.(credentials.StaticCredentialsProvider)
	assert.False(t, isStatic, "an access key without a secret key must use the default chain")
}

func TestSDKConfig(t *testing.T) {
	t.Run("iam disabled", func(t *testing.T) {
		cfg := &Config{
			Neptune: NeptuneConfig{Endpoint: "localhost", Port: 8182},
			AWS:     AWSConfig{Region: "eu-central-1"},
		}

		sdkCfg, err := cfg.SDKConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "eu-central-1", sdkCfg.Region)
	})

	t.Run("iam enabled with static credentials", func(t *testing.T) {
		cfg := &Config{
			Neptune: NeptuneConfig{Endpoint: "localhost", Port: 8182, IAMAuth: true},
			AWS:     AWSConfig{Region: "us-east-2", AccessKey: "AKID", SecretKey: "SECRET"},
		}

		sdkCfg, err := cfg.SDKConfig(context.Background())
		require.NoError(t, err)
		require.NotNil(t, sdkCfg.Credentials)

		creds, err := sdkCfg.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "AKID", creds.AccessKeyID)
	})
}
