// Package config loads the bootstrap credentials required to reach AWS
// Secrets Manager, plus small environment-variable helpers shared by the
// rest of the module.
//
// # Bootstrap credentials
//
// Two variables are mandatory and have no defaults:
//
//	AWS_ACCESS_KEY_ID
//	AWS_SECRET_ACCESS_KEY
//
// They may be set directly in the process environment or in a local .env
// file (loaded with godotenv; a missing file is not an error). Names are
// case-sensitive. If either variable is absent the process must not start:
// without them the secret fetch cannot authenticate, so there is nothing
// sensible to fall back to.
//
// # Usage
//
//	creds, err := config.LoadCredentials("")
//	if err != nil {
//		log.Fatal(err)
//	}
package config
