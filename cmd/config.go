package cmd

// Config holds every runtime setting the service reads from the
// environment via the .env file.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	DemoMode        string
	OrderTTLMinutes string
}
