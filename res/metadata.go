package res

const (
	AppName       = "snackview"
	DisplayName   = "SnackView Preview"
	AppVersion    = "0.1.0"
	AppVersionTag = "v" + AppVersion
	GithubURL     = "https://github.com/snackview/snackview"
)
