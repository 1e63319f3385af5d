package config

// logConfiguration controls the logging package's backends and level.
type logConfiguration struct {
	LogLevel     string
	SearchLevel  string
	LogToFile    bool
	LogFilePath  string
}

func init() {
	Settings.Log.LogLevel = "INFO"
	Settings.Log.SearchLevel = "INFO"
	Settings.Log.LogToFile = false
	Settings.Log.LogFilePath = "./franky.log"
}
