// Command settings-dump loads the backend configuration the same way the
// service does and prints every resolved property, so operators can see
// what a deployment would actually run with. Secret-bearing values are
// redacted unless -show-secrets is set.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lumaya/backend-settings/pkg/config"
	"github.com/lumaya/backend-settings/pkg/secrets"
	"github.com/lumaya/backend-settings/pkg/settings"
)

func main() {
	secretName := flag.String("secret-name", config.GetEnv("LUMAYA_SECRET_NAME", secrets.DefaultSecretName), "Secrets Manager bundle to load")
	region := flag.String("region", config.GetEnv("LUMAYA_SECRET_REGION", secrets.DefaultRegion), "AWS region of the bundle")
	envFile := flag.String("env-file", "", "Optional .env file with the bootstrap credentials")
	asJSON := flag.Bool("json", false, "Print properties as JSON")
	showSecrets := flag.Bool("show-secrets", false, "Print secret values instead of redacting them")
	flag.Parse()

	logger := logrus.New()
	if config.GetEnvBool("LUMAYA_DEBUG", false) {
		logger.SetLevel(logrus.DebugLevel)
	}

	creds, err := config.LoadCredentials(*envFile)
	if err != nil {
		log.Fatalf("Failed to load bootstrap credentials: %v", err)
	}

	ctx := context.Background()
	client, err := secrets.NewClient(ctx, creds, *region, logger)
	if err != nil {
		log.Fatalf("Failed to build Secrets Manager client: %v", err)
	}

	s := settings.New(client,
		settings.WithSecretName(*secretName),
		settings.WithLogger(logger),
	)

	props, err := resolve(s)
	if err != nil {
		log.Fatalf("Failed to resolve settings: %v", err)
	}

	if !*showSecrets {
		redact(props)
	}

	if *asJSON {
		out := make(map[string]string, len(props))
		for _, p := range props {
			out[p.name] = p.value
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("Failed to encode settings: %v", err)
		}
		return
	}

	for _, p := range props {
		fmt.Printf("%-32s %s\n", p.name, p.value)
	}
}

type property struct {
	name  string
	value string
}

// resolve reads every property once, which also forces the bundle fetch.
func resolve(s *settings.Settings) ([]property, error) {
	smtpPort, err := s.SMTPPort()
	if err != nil {
		return nil, err
	}

	return []property{
		{"Environment", s.Environment()},
		{"Domain", s.Domain()},
		{"AllowOrigins", s.AllowOrigins()},
		{"BackendURL", s.BackendURL()},
		{"BackendIsHTTPS", strconv.FormatBool(s.BackendIsHTTPS())},
		{"FrontendBaseURL", s.FrontendBaseURL()},
		{"FrontendIsHTTPS", strconv.FormatBool(s.FrontendIsHTTPS())},
		{"AdminEmail", s.AdminEmail()},
		{"PostgresUser", s.PostgresUser()},
		{"PostgresPassword", s.PostgresPassword()},
		{"PostgresServer", s.PostgresServer()},
		{"PostgresPort", s.PostgresPort()},
		{"PostgresDB", s.PostgresDB()},
		{"DatabaseURL", s.DatabaseURL()},
		{"SecretKey", s.SecretKey()},
		{"SMTPHost", s.SMTPHost()},
		{"SMTPPort", strconv.Itoa(smtpPort)},
		{"SMTPUser", s.SMTPUser()},
		{"SMTPPassword", s.SMTPPassword()},
		{"SMTPSenderEmail", s.SMTPSenderEmail()},
		{"SMTPFromName", s.SMTPFromName()},
		{"AWSRegion", s.AWSRegion()},
		{"S3BucketName", s.S3BucketName()},
		{"S3BucketARN", s.S3BucketARN()},
		{"VeriffAPIKey", s.VeriffAPIKey()},
		{"VeriffSharedSecretKey", s.VeriffSharedSecretKey()},
		{"VeriffBaseURL", s.VeriffBaseURL()},
		{"VeriffCallbackURL", s.VeriffCallbackURL()},
		{"GoogleClientID", s.GoogleClientID()},
		{"SendGridKey", s.SendGridKey()},
		{"SendGridEmail", s.SendGridEmail()},
		{"SendGridName", s.SendGridName()},
		{"WelcomeENTemplateID", s.WelcomeENTemplateID()},
		{"WelcomeFRTemplateID", s.WelcomeFRTemplateID()},
		{"SubmitSellBusinessTemplateID", s.SubmitSellBusinessTemplateID()},
		{"CriteriaSavedTemplateID", s.CriteriaSavedTemplateID()},
		{"MessageReceivedTemplateID", s.MessageReceivedTemplateID()},
		{"BusinessPublishedTemplateID", s.BusinessPublishedTemplateID()},
		{"BusinessEditedTemplateID", s.BusinessEditedTemplateID()},
		{"BusinessArchivedTemplateID", s.BusinessArchivedTemplateID()},
		{"RequestDetailsTemplateID", s.RequestDetailsTemplateID()},
		{"AccessGrantedTemplateID", s.AccessGrantedTemplateID()},
		{"SkribbleAPIKey", s.SkribbleAPIKey()},
		{"SkribbleUsername", s.SkribbleUsername()},
		{"SkribbleURL", s.SkribbleURL()},
	}, nil
}

// redact masks values whose property name marks them as sensitive.
// DatabaseURL embeds the Postgres password, so it is masked too.
func redact(props []property) {
	for i, p := range props {
		if p.value == "" {
			continue
		}
		lower := strings.ToLower(p.name)
		if strings.Contains(lower, "password") ||
			strings.Contains(lower, "secret") ||
			strings.Contains(lower, "key") ||
			p.name == "DatabaseURL" {
			props[i].value = "********"
		}
	}
}
