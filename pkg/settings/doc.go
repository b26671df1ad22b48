// Package settings exposes the backend's resolved runtime configuration.
//
// # Overview
//
// A Settings value resolves every configuration property from the secret
// bundle fetched by pkg/secrets, substituting a literal default when the
// bundle leaves a field absent or empty. The bundle is fetched exactly once,
// on the first property read, and cached for the life of the process; the
// fetch is safe under concurrent first access.
//
// Settings is constructed explicitly and passed to consumers; there is no
// package-level singleton.
//
// # Usage
//
//	s := settings.New(client, settings.WithLogger(logger))
//	dsn := s.DatabaseURL()
//	if s.FrontendIsHTTPS() {
//		// ...
//	}
//
// Every accessor returns a plain value except SMTPPort, which reports a
// typed *ParseError when the bundle carries a non-numeric port. A malformed
// value is a configuration bug worth surfacing, unlike an absent one.
//
// # Related Packages
//
//   - pkg/secrets: fetches and parses the bundle
//   - pkg/config: bootstrap credentials for the fetch
package settings
