package settings

import "github.com/lumaya/backend-settings/pkg/secrets"

// defaults maps every bundle field to the value used when the field is
// absent or empty. Most fields default to the empty string; the exceptions
// carry the values the backend ships with out of the box.
var defaults = map[string]string{
	secrets.FieldPostgresUser:     "",
	secrets.FieldPostgresPassword: "",
	secrets.FieldPostgresServer:   "localhost",
	secrets.FieldPostgresPort:     "5432",
	secrets.FieldPostgresDB:       "",

	secrets.FieldSecretKey:   "",
	secrets.FieldEnvironment: "development",

	secrets.FieldSMTPHost:     "",
	secrets.FieldSMTPPort:     "587",
	secrets.FieldSMTPUser:     "",
	secrets.FieldSMTPPassword: "",
	secrets.FieldSenderEmail:  "",
	secrets.FieldSMTPFromName: "",

	secrets.FieldVeriffAPIKey:          "",
	secrets.FieldVeriffSharedSecretKey: "",
	secrets.FieldVeriffBaseURL:         "",
	secrets.FieldVeriffCallbackURL:     "https://lumaya-web.hashlogics.com/en",

	secrets.FieldGoogleClientID: "client id",

	secrets.FieldSendGridAPIKey: "",
	secrets.FieldSendGridEmail:  "",
	secrets.FieldSendGridName:   "",

	secrets.FieldWelcomeENTemplateID:          "",
	secrets.FieldWelcomeFRTemplateID:          "",
	secrets.FieldSubmitSellBusinessTemplateID: "",
	secrets.FieldCriteriaSavedTemplateID:      "",
	secrets.FieldMessageReceivedTemplateID:    "",
	secrets.FieldBusinessPublishedTemplateID:  "",
	secrets.FieldBusinessEditedTemplateID:     "",
	secrets.FieldBusinessArchivedTemplateID:   "",
	secrets.FieldRequestDetailsTemplateID:     "",
	secrets.FieldAccessGrantedTemplateID:      "",

	secrets.FieldSkribbleAPIKey:   "",
	secrets.FieldSkribbleUsername: "",
	secrets.FieldSkribbleURL:      "https://api.skribble.com/v2",

	secrets.FieldBackendURL:      "",
	secrets.FieldFrontendBaseURL: "",

	secrets.FieldAdminEmail: "isabelle@lumaya.ch",

	secrets.FieldFrontendIsHTTPS: "false",
	secrets.FieldBackendIsHTTPS:  "false",
	secrets.FieldAllowOrigins:    "",
	secrets.FieldDomain:          "",
	secrets.FieldAWSRegion:       "",
	secrets.FieldS3BucketName:    "lumaya-bucket",
	secrets.FieldS3BucketARN:     "arn:aws:s3:::lumaya-bucket-dev",
}
