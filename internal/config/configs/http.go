package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. AllowedOrigins feeds the CORS
// middleware and MaxUploadBytes caps the size of uploaded campaign files.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins lists origins allowed by CORS, comma separated.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	// MaxUploadBytes limits request bodies of the analyze endpoints.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
}
