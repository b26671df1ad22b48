package secrets

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"

	"github.com/lumaya/backend-settings/pkg/config"
)

// Defaults for the backend's configuration bundle.
const (
	DefaultSecretName = "lumaya-backend-env"
	DefaultRegion     = "eu-central-2"
)

// Fetcher retrieves one named secret bundle.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (Schema, error)
}

// FailureKind categorizes why a fetch could not produce a bundle.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureAccessDenied
	FailureNotFound
	FailureInvalidRequest
	FailureTransport
)

func (k FailureKind) String() string {
	switch k {
	case FailureAccessDenied:
		return "access_denied"
	case FailureNotFound:
		return "not_found"
	case FailureInvalidRequest:
		return "invalid_request"
	case FailureTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// secretsAPI is the slice of the Secrets Manager client the fetcher uses.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Client fetches secret bundles from AWS Secrets Manager.
type Client struct {
	api secretsAPI
	log *logrus.Logger
}

// NewClient builds a Secrets Manager client authenticated with the given
// static bootstrap credentials in the given region.
func NewClient(ctx context.Context, creds config.Credentials, region string, log *logrus.Logger) (*Client, error) {
	if log == nil {
		log = logrus.New()
	}
	if region == "" {
		region = DefaultRegion
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			creds.AccessKeyID,
			creds.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		api: secretsmanager.NewFromConfig(awsConfig),
		log: log,
	}, nil
}

// Fetch retrieves and parses the named bundle.
//
// Any store-level failure is downgraded: it is logged with its failure
// kind and the empty Schema is returned with a nil error, so the caller
// starts on default values instead of crashing. A plain-text payload whose
// secret name is not a recognized field is logged and dropped; the empty
// Schema comes back with the parse error so callers can observe the drop.
func (c *Client) Fetch(ctx context.Context, name string) (Schema, error) {
	out, err := c.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"secret":  name,
			"failure": ClassifyFailure(err).String(),
			"error":   err.Error(),
		}).Warn("failed to fetch secret bundle, falling back to defaults")
		return Schema{}, nil
	}

	schema, err := ParseBundle(name, aws.ToString(out.SecretString))
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"secret": name,
			"error":  err.Error(),
		}).Warn("dropped plain-text secret payload")
	}
	return schema, err
}

// ClassifyFailure maps a fetch error onto the closed set of failure kinds.
func ClassifyFailure(err error) FailureKind {
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return FailureNotFound
	}
	var invalidReq *types.InvalidRequestException
	var invalidParam *types.InvalidParameterException
	if errors.As(err, &invalidReq) || errors.As(err, &invalidParam) {
		return FailureInvalidRequest
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "UnrecognizedClientException",
			"InvalidSignatureException", "ExpiredTokenException":
			return FailureAccessDenied
		case "ResourceNotFoundException":
			return FailureNotFound
		case "InvalidRequestException", "InvalidParameterException":
			return FailureInvalidRequest
		}
		return FailureUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureTransport
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureTransport
	}
	return FailureUnknown
}
