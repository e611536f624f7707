package env

var (
	// Logger writes diagnostic messages: console.log in the browser,
	// the structured logger on the backend.
	Logger = SetupDefaultLogger()
	// FileReader loads static resources such as fonts.
	FileReader = SetupDefaultFileReader()
	// Alert surfaces a failure message to the user.
	Alert = SetupDefaultAlert()
)
