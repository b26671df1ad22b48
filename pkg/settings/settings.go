package settings

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lumaya/backend-settings/pkg/secrets"
)

// ParseError reports a bundle value that is present but not parseable into
// the property's type. Distinct from an absent value, which resolves to the
// property's default.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed value %q for %s: %v", e.Value, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Settings resolves configuration properties from the secret bundle,
// falling back to literal defaults. Construct with New and share freely;
// all methods are safe for concurrent use.
type Settings struct {
	fetcher    secrets.Fetcher
	secretName string
	log        *logrus.Logger

	once   sync.Once
	schema secrets.Schema
}

// Option configures a Settings value.
type Option func(*Settings)

// WithSecretName overrides the bundle name fetched on first access.
func WithSecretName(name string) Option {
	return func(s *Settings) { s.secretName = name }
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Settings) { s.log = log }
}

// New builds a Settings facade over the given fetcher. Nothing is fetched
// until the first property read.
func New(fetcher secrets.Fetcher, opts ...Option) *Settings {
	s := &Settings{
		fetcher:    fetcher,
		secretName: secrets.DefaultSecretName,
		log:        logrus.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load performs the one-shot bundle fetch. Concurrent first readers block
// on the same fetch and observe the same schema; the network call runs at
// most once per process.
func (s *Settings) load() secrets.Schema {
	s.once.Do(func() {
		schema, err := s.fetcher.Fetch(context.Background(), s.secretName)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"secret": s.secretName,
				"error":  err.Error(),
			}).Warn("secret bundle unavailable, using defaults")
			schema = secrets.Schema{}
		}
		s.schema = schema
	})
	return s.schema
}

// lookup resolves one field: present and non-empty wins, otherwise the
// entry from the defaults table.
func (s *Settings) lookup(field string) string {
	if v, ok := s.load().Get(field); ok && v != "" {
		return v
	}
	return defaults[field]
}

// lookupBool resolves one of the HTTPS flags. Values are normalized at
// parse time, so anything but the canonical "true" is false.
func (s *Settings) lookupBool(field string) bool {
	v, _ := s.load().Get(field)
	return v == "true"
}

// Database configuration.

func (s *Settings) PostgresUser() string     { return s.lookup(secrets.FieldPostgresUser) }
func (s *Settings) PostgresPassword() string { return s.lookup(secrets.FieldPostgresPassword) }
func (s *Settings) PostgresServer() string   { return s.lookup(secrets.FieldPostgresServer) }
func (s *Settings) PostgresPort() string     { return s.lookup(secrets.FieldPostgresPort) }
func (s *Settings) PostgresDB() string       { return s.lookup(secrets.FieldPostgresDB) }

// DatabaseURL assembles the Postgres connection string. User and password
// are embedded verbatim; values containing ':', '@' or '/' produce an
// unparsable URL. Known limitation.
func (s *Settings) DatabaseURL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		s.PostgresUser(), s.PostgresPassword(), s.PostgresServer(), s.PostgresPort(), s.PostgresDB())
}

// Authentication.

func (s *Settings) SecretKey() string { return s.lookup(secrets.FieldSecretKey) }

// Environment returns the deployment environment name, "development" when
// unset.
func (s *Settings) Environment() string { return s.lookup(secrets.FieldEnvironment) }

// SMTP configuration.

func (s *Settings) SMTPHost() string { return s.lookup(secrets.FieldSMTPHost) }

// SMTPPort returns the SMTP port, 587 when unset. A present but
// non-numeric value yields a *ParseError rather than the default.
func (s *Settings) SMTPPort() (int, error) {
	raw := s.lookup(secrets.FieldSMTPPort)
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Field: secrets.FieldSMTPPort, Value: raw, Err: err}
	}
	return port, nil
}

func (s *Settings) SMTPUser() string        { return s.lookup(secrets.FieldSMTPUser) }
func (s *Settings) SMTPPassword() string    { return s.lookup(secrets.FieldSMTPPassword) }
func (s *Settings) SMTPSenderEmail() string { return s.lookup(secrets.FieldSenderEmail) }
func (s *Settings) SMTPFromName() string    { return s.lookup(secrets.FieldSMTPFromName) }

// AWS resources used by the application itself (not the bootstrap
// credentials).

func (s *Settings) AWSRegion() string    { return s.lookup(secrets.FieldAWSRegion) }
func (s *Settings) S3BucketName() string { return s.lookup(secrets.FieldS3BucketName) }
func (s *Settings) S3BucketARN() string  { return s.lookup(secrets.FieldS3BucketARN) }

// Veriff identity verification.

func (s *Settings) VeriffAPIKey() string { return s.lookup(secrets.FieldVeriffAPIKey) }
func (s *Settings) VeriffSharedSecretKey() string {
	return s.lookup(secrets.FieldVeriffSharedSecretKey)
}
func (s *Settings) VeriffBaseURL() string     { return s.lookup(secrets.FieldVeriffBaseURL) }
func (s *Settings) VeriffCallbackURL() string { return s.lookup(secrets.FieldVeriffCallbackURL) }

// Google OAuth.

func (s *Settings) GoogleClientID() string { return s.lookup(secrets.FieldGoogleClientID) }

// SendGrid email delivery.

func (s *Settings) SendGridKey() string   { return s.lookup(secrets.FieldSendGridAPIKey) }
func (s *Settings) SendGridEmail() string { return s.lookup(secrets.FieldSendGridEmail) }
func (s *Settings) SendGridName() string  { return s.lookup(secrets.FieldSendGridName) }

// Transactional email template IDs.

func (s *Settings) WelcomeENTemplateID() string { return s.lookup(secrets.FieldWelcomeENTemplateID) }
func (s *Settings) WelcomeFRTemplateID() string { return s.lookup(secrets.FieldWelcomeFRTemplateID) }
func (s *Settings) SubmitSellBusinessTemplateID() string {
	return s.lookup(secrets.FieldSubmitSellBusinessTemplateID)
}
func (s *Settings) CriteriaSavedTemplateID() string {
	return s.lookup(secrets.FieldCriteriaSavedTemplateID)
}
func (s *Settings) MessageReceivedTemplateID() string {
	return s.lookup(secrets.FieldMessageReceivedTemplateID)
}
func (s *Settings) BusinessPublishedTemplateID() string {
	return s.lookup(secrets.FieldBusinessPublishedTemplateID)
}
func (s *Settings) BusinessEditedTemplateID() string {
	return s.lookup(secrets.FieldBusinessEditedTemplateID)
}
func (s *Settings) BusinessArchivedTemplateID() string {
	return s.lookup(secrets.FieldBusinessArchivedTemplateID)
}
func (s *Settings) RequestDetailsTemplateID() string {
	return s.lookup(secrets.FieldRequestDetailsTemplateID)
}
func (s *Settings) AccessGrantedTemplateID() string {
	return s.lookup(secrets.FieldAccessGrantedTemplateID)
}

// Skribble e-signature.

func (s *Settings) SkribbleAPIKey() string   { return s.lookup(secrets.FieldSkribbleAPIKey) }
func (s *Settings) SkribbleUsername() string { return s.lookup(secrets.FieldSkribbleUsername) }
func (s *Settings) SkribbleURL() string      { return s.lookup(secrets.FieldSkribbleURL) }

// Service URLs and CORS.

func (s *Settings) BackendURL() string      { return s.lookup(secrets.FieldBackendURL) }
func (s *Settings) FrontendBaseURL() string { return s.lookup(secrets.FieldFrontendBaseURL) }
func (s *Settings) AdminEmail() string      { return s.lookup(secrets.FieldAdminEmail) }

func (s *Settings) FrontendIsHTTPS() bool { return s.lookupBool(secrets.FieldFrontendIsHTTPS) }
func (s *Settings) BackendIsHTTPS() bool  { return s.lookupBool(secrets.FieldBackendIsHTTPS) }

func (s *Settings) AllowOrigins() string { return s.lookup(secrets.FieldAllowOrigins) }
func (s *Settings) Domain() string       { return s.lookup(secrets.FieldDomain) }
