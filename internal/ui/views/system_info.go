package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath string
	DBPath     string
	DBExists   bool // true = Found, false = Not Found
	APIBaseURL string
	HasToken   bool
	UserID     string
	UserName   string
	LogLevel   string
	AppDataDir string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	token := pterm.Green("Set")
	if !data.HasToken {
		token = pterm.Red("Missing")
	}

	user := data.UserID
	if data.UserName != "" {
		user = data.UserName + " (" + data.UserID + ")"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"API Base URL", data.APIBaseURL},
		{"API Token", token},
		{"User", user},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
