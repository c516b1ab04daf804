package config

// GoogleConfig contains Google identity configuration for federated sign-in.
// The client ID identifies this application to Google's identity service; the
// ID token it yields is forwarded to the backend, which owns verification of
// the account itself.
type GoogleConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"healteex-dev.apps.googleusercontent.com"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:""`

	// RedirectAddr is the loopback address the authorization flow listens on
	// for Google's redirect. Port 0 picks a free port.
	RedirectAddr string `env:"REDIRECT_ADDR" envDefault:"127.0.0.1:0"`
}
