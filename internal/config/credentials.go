package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/monejava/neptune-demo/internal/types"
	"github.com/monejava/neptune-demo/pkg/version"
)

// CredentialsProvider selects how AWS credentials are obtained. A configured access key
// and secret key give a static provider (temporary credentials when a session token is
// also set); otherwise the SDK default provider chain is used.
func (c AWSConfig) CredentialsProvider(ctx context.Context) (aws.CredentialsProvider, error) {
	if c.HasStaticCredentials() {
		return credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, c.SessionToken), nil
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Region))
	if err != nil {
		return nil, types.WrapError(types.CREDENTIAL_UNAVAILABLE, "failed to load default credential chain", err)
	}
	if sdkCfg.Credentials == nil {
		return nil, types.NewError(types.CREDENTIAL_UNAVAILABLE, "default credential chain produced no provider")
	}

	return sdkCfg.Credentials, nil
}

// SDKConfig builds the aws.Config used by the Data API client. Credentials are only
// attached when IAM authentication is enabled; callers must send unsigned requests
// otherwise.
func (c *Config) SDKConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.AWS.Region),
		awsconfig.WithAppID(version.UserAgent()),
	}

	if c.Neptune.IAMAuth {
		provider, err := c.AWS.CredentialsProvider(ctx)
		if err != nil {
			return aws.Config{}, err
		}
		opts = append(opts, awsconfig.WithCredentialsProvider(provider))
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, types.WrapError(types.CONFIG_LOAD_FAILED, "failed to build AWS SDK configuration", err)
	}

	return sdkCfg, nil
}
