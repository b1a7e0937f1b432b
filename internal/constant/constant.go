package constant

const (
	// AppName is the binary name shown in usage output
	AppName = "bot-admin"

	// MarkerFileName is the file in the working directory holding the database path
	MarkerFileName = ".bot-admin"
)

// Log rotation defaults for --log-file
const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 10
	LogMaxAgeDays = 30
)
