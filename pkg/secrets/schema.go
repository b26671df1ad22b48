package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Recognized field names in the backend configuration bundle. The names are
// the literal JSON keys stored in Secrets Manager.
const (
	FieldPostgresUser     = "POSTGRES_USER"
	FieldPostgresPassword = "POSTGRES_PASSWORD"
	FieldPostgresServer   = "POSTGRES_SERVER"
	FieldPostgresPort     = "POSTGRES_PORT"
	FieldPostgresDB       = "POSTGRES_DB"

	FieldSecretKey   = "SECRET_KEY"
	FieldEnvironment = "PYTHON_ENVIRONMENT"

	FieldSMTPHost     = "SMTP_HOST"
	FieldSMTPPort     = "SMTP_PORT"
	FieldSMTPUser     = "SMTP_USER"
	FieldSMTPPassword = "SMTP_PASSWORD"
	FieldSenderEmail  = "SENDER_EMAIL"
	FieldSMTPFromName = "SMTP_FROM_NAME"

	FieldVeriffAPIKey          = "VERIFF_API_KEY"
	FieldVeriffSharedSecretKey = "VERIFF_API_SHARED_SECRET_KEY"
	FieldVeriffBaseURL         = "VERIFF_BASE_URL"
	FieldVeriffCallbackURL     = "VERIFF_CALLBACK_URL"

	FieldGoogleClientID = "GOOGLE_CLIENT_ID"

	FieldSendGridAPIKey = "SENDGRID_API_KEY"
	FieldSendGridEmail  = "SEND_GRID_EMAIL"
	FieldSendGridName   = "SEND_GRID_NAME"

	FieldWelcomeENTemplateID          = "WELCOME_EN_EMAIL_TEMPLATE_ID"
	FieldWelcomeFRTemplateID          = "WELCOME_FR_EMAIL_TEMPLATE_ID"
	FieldSubmitSellBusinessTemplateID = "SUBMIT_SELL_YOUR_BUSINESS_EMAIL_TEMPLATE_ID"
	FieldCriteriaSavedTemplateID      = "CRITERIA_SAVED_AS_BUYER_EMAIL_TEMPLATE_ID"
	FieldMessageReceivedTemplateID    = "MESSAGE_RECEIVED_FROM_CONTACT_EMAIL_TEMPLATE_ID"
	FieldBusinessPublishedTemplateID  = "BUSINESS_PUBLISHED_EMAIL_TEMPLATE_ID"
	FieldBusinessEditedTemplateID     = "BUSINESS_EDITED_EMAIL_TEMPLATE_ID"
	FieldBusinessArchivedTemplateID   = "BUSINESS_ARCHIVED_EMAIL_TEMPLATE_ID"
	FieldRequestDetailsTemplateID     = "REQUEST_MORE_DETAILS_SELLER_EMAIL_TEMPLATE_ID"
	FieldAccessGrantedTemplateID      = "ACCESS_GRANTED_TO_BUYER_EMAIL_TEMPLATE_ID"

	FieldSkribbleAPIKey   = "SKRIBBLE_API_KEY"
	FieldSkribbleUsername = "SKRIBBLE_USERNAME"
	FieldSkribbleURL      = "SKRIBBLE_URL"

	FieldBackendURL      = "BACKEND_URL"
	FieldFrontendBaseURL = "FRONTEND_BASE_URL"

	FieldAdminEmail = "ADMIN_EMAIL"

	FieldFrontendIsHTTPS = "FRONTEND_IS_HTTPS"
	FieldBackendIsHTTPS  = "BACKEND_IS_HTTPS"
	FieldAllowOrigins    = "ALLOW_ORIGINS"
	FieldDomain          = "DOMAIN"
	FieldAWSRegion       = "AWS_REGION"
	FieldS3BucketName    = "S3_BUCKET_NAME"
	FieldS3BucketARN     = "S3_BUCKET_ARN"
)

// fields lists every recognized bundle key.
var fields = []string{
	FieldPostgresUser,
	FieldPostgresPassword,
	FieldPostgresServer,
	FieldPostgresPort,
	FieldPostgresDB,
	FieldSecretKey,
	FieldEnvironment,
	FieldSMTPHost,
	FieldSMTPPort,
	FieldSMTPUser,
	FieldSMTPPassword,
	FieldSenderEmail,
	FieldSMTPFromName,
	FieldVeriffAPIKey,
	FieldVeriffSharedSecretKey,
	FieldVeriffBaseURL,
	FieldVeriffCallbackURL,
	FieldGoogleClientID,
	FieldSendGridAPIKey,
	FieldSendGridEmail,
	FieldSendGridName,
	FieldWelcomeENTemplateID,
	FieldWelcomeFRTemplateID,
	FieldSubmitSellBusinessTemplateID,
	FieldCriteriaSavedTemplateID,
	FieldMessageReceivedTemplateID,
	FieldBusinessPublishedTemplateID,
	FieldBusinessEditedTemplateID,
	FieldBusinessArchivedTemplateID,
	FieldRequestDetailsTemplateID,
	FieldAccessGrantedTemplateID,
	FieldSkribbleAPIKey,
	FieldSkribbleUsername,
	FieldSkribbleURL,
	FieldBackendURL,
	FieldFrontendBaseURL,
	FieldAdminEmail,
	FieldFrontendIsHTTPS,
	FieldBackendIsHTTPS,
	FieldAllowOrigins,
	FieldDomain,
	FieldAWSRegion,
	FieldS3BucketName,
	FieldS3BucketARN,
}

var recognized = func() map[string]struct{} {
	m := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		m[f] = struct{}{}
	}
	return m
}()

// booleanFields are stored in canonical "true"/"false" form.
var booleanFields = map[string]struct{}{
	FieldFrontendIsHTTPS: {},
	FieldBackendIsHTTPS:  {},
}

// Fields returns a copy of every recognized bundle key.
func Fields() []string {
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// IsRecognized reports whether key is part of the bundle schema.
func IsRecognized(key string) bool {
	_, ok := recognized[key]
	return ok
}

// ErrUnrecognizedField indicates a plain-text payload whose secret name is
// not part of the bundle schema; its value is dropped.
var ErrUnrecognizedField = errors.New("secret name is not a recognized configuration field")

// Schema is the parsed, read-only view of one configuration bundle. Every
// field is optional. The zero value is the empty bundle.
type Schema struct {
	values map[string]string
}

// NewSchema builds a Schema from raw key-value pairs. Unrecognized keys are
// dropped. The HTTPS flags are normalized to "true" or "false".
func NewSchema(values map[string]string) Schema {
	if len(values) == 0 {
		return Schema{}
	}
	kept := make(map[string]string, len(values))
	for k, v := range values {
		if _, ok := recognized[k]; !ok {
			continue
		}
		if _, ok := booleanFields[k]; ok {
			v = strconv.FormatBool(truthy(v))
		}
		kept[k] = v
	}
	return Schema{values: kept}
}

// Get returns the raw value for key and whether it is set. Empty strings
// are returned as set; callers decide whether empty means absent.
func (s Schema) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of set fields.
func (s Schema) Len() int {
	return len(s.values)
}

// ParseBundle interprets a raw secret payload fetched under name.
//
// A JSON object is treated as the bundle itself: recognized keys keep
// their string form (booleans and numbers are stringified), everything
// else is dropped. Any other payload, JSON scalar or not, is treated as a
// single plain-text value stored under the secret's own name. When that
// name is not a recognized field the value has nowhere to go; the empty
// Schema is returned along with an error wrapping ErrUnrecognizedField so
// the caller can log the drop.
func ParseBundle(name, payload string) (Schema, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		// Plain text secret.
		return schemaFromScalar(name, payload)
	}

	// Trailing bytes after the first JSON value mean the payload as a
	// whole is not JSON; keep it intact as plain text.
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return schemaFromScalar(name, payload)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		// Valid JSON, but a scalar or array: single value secret.
		return schemaFromScalar(name, stringify(raw))
	}

	values := make(map[string]string, len(obj))
	for k, v := range obj {
		if v == nil {
			continue
		}
		values[k] = stringify(v)
	}
	return NewSchema(values), nil
}

func schemaFromScalar(name, value string) (Schema, error) {
	if !IsRecognized(name) {
		return Schema{}, fmt.Errorf("%w: %s", ErrUnrecognizedField, name)
	}
	return NewSchema(map[string]string{name: value}), nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// truthy applies the bundle's boolean convention: "true", "1", "yes" and
// "on", case-insensitively, are true; everything else is false.
func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
