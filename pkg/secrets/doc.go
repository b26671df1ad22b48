// Package secrets retrieves the backend's configuration bundle from AWS
// Secrets Manager and parses it into a Schema of optional string fields.
//
// # Overview
//
// The bundle is a single named secret (by default "lumaya-backend-env" in
// eu-central-2) whose payload is either a flat JSON object of recognized
// field names, or a plain-text scalar. Every field is optional; an absent
// field is a normal state, never an error.
//
// A fetch failure of any kind (access denied, not found, transport error)
// is logged and downgraded to an empty Schema so the consuming application
// can still start on default values.
//
// # Usage
//
//	client, err := secrets.NewClient(ctx, creds, secrets.DefaultRegion, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	schema, _ := client.Fetch(ctx, secrets.DefaultSecretName)
//
// # Related Packages
//
//   - pkg/config: supplies the bootstrap credentials
//   - pkg/settings: resolves Schema fields against defaults
package secrets
