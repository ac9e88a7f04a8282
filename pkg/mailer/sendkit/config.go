package sendkit

// Config holds SendKit sender configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	SenderEmail string `env:"SENDKIT_FROM_EMAIL"`
	SenderName  string `env:"SENDKIT_FROM_NAME"`
}
