package secrets

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsAPI struct {
	payload string
	err     error
	calls   int
}

func (f *fakeSecretsAPI) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{
		SecretString: aws.String(f.payload),
	}, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestClientFetchParsesPayload(t *testing.T) {
	api := &fakeSecretsAPI{payload: `{"POSTGRES_USER":"u","POSTGRES_DB":"d"}`}
	client := &Client{api: api, log: quietLogger()}

	schema, err := client.Fetch(context.Background(), DefaultSecretName)
	require.NoError(t, err)

	v, ok := schema.Get(FieldPostgresUser)
	assert.True(t, ok)
	assert.Equal(t, "u", v)
	assert.Equal(t, 1, api.calls)
}

func TestClientFetchDowngradesStoreErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "secret not found",
			err:  &types.ResourceNotFoundException{Message: aws.String("no such secret")},
		},
		{
			name: "access denied",
			err:  &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "nope"},
		},
		{
			name: "network failure",
			err:  &net.DNSError{Err: "no such host", Name: "secretsmanager.eu-central-2.amazonaws.com"},
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{api: &fakeSecretsAPI{err: tt.err}, log: quietLogger()}

			schema, err := client.Fetch(context.Background(), DefaultSecretName)
			require.NoError(t, err, "store failures must not propagate")
			assert.Equal(t, 0, schema.Len(), "fallback schema must be empty")
		})
	}
}

func TestClientFetchPlainTextRecognizedName(t *testing.T) {
	client := &Client{api: &fakeSecretsAPI{payload: "lumaya.ch"}, log: quietLogger()}

	schema, err := client.Fetch(context.Background(), FieldDomain)
	require.NoError(t, err)

	v, ok := schema.Get(FieldDomain)
	assert.True(t, ok)
	assert.Equal(t, "lumaya.ch", v)
}

func TestClientFetchDropsUnroutablePlainText(t *testing.T) {
	client := &Client{api: &fakeSecretsAPI{payload: "hello"}, log: quietLogger()}

	schema, err := client.Fetch(context.Background(), "some-random-secret")
	require.ErrorIs(t, err, ErrUnrecognizedField)
	assert.Equal(t, 0, schema.Len())
}

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "typed not found",
			err:  &types.ResourceNotFoundException{},
			want: FailureNotFound,
		},
		{
			name: "typed invalid request",
			err:  &types.InvalidRequestException{},
			want: FailureInvalidRequest,
		},
		{
			name: "access denied code",
			err:  &smithy.GenericAPIError{Code: "AccessDeniedException"},
			want: FailureAccessDenied,
		},
		{
			name: "expired token code",
			err:  &smithy.GenericAPIError{Code: "ExpiredTokenException"},
			want: FailureAccessDenied,
		},
		{
			name: "not found by code",
			err:  &smithy.GenericAPIError{Code: "ResourceNotFoundException"},
			want: FailureNotFound,
		},
		{
			name: "unknown api error",
			err:  &smithy.GenericAPIError{Code: "ThrottlingException"},
			want: FailureUnknown,
		},
		{
			name: "dns error",
			err:  &net.DNSError{Err: "no such host"},
			want: FailureTransport,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: FailureTransport,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: FailureUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFailure(tt.err))
		})
	}
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "access_denied", FailureAccessDenied.String())
	assert.Equal(t, "not_found", FailureNotFound.String())
	assert.Equal(t, "invalid_request", FailureInvalidRequest.String())
	assert.Equal(t, "transport", FailureTransport.String())
	assert.Equal(t, "unknown", FailureUnknown.String())
}
