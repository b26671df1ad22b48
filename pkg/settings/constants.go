package settings

import "time"

// Fixed values that are not part of the secret bundle.
const (
	APIV1Prefix = "/api/v1"

	ProjectName        = "Lumaya"
	ProjectDescription = "Lumaya backend provides the marketplace API, using PostgreSQL for persistence, " +
		"JWT for authentication, and SMTP, Veriff and Skribble integrations. It is configured entirely " +
		"from a single Secrets Manager bundle with environment defaults."

	JWTAlgorithm = "HS256"

	AccessTokenExpiry  = 15 * time.Minute
	RefreshTokenExpiry = 24 * time.Hour
)

// DefaultCORSOrigins are the origins allowed when no ALLOW_ORIGINS value is
// configured, matching local development of the web frontend.
var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8000",
}
