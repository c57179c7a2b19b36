package constants

const (
	AppName    = "caixa"
	EnvPrefix  = "CAIXA"
	ConfigName = "config"
	DBFileName = "caixa.db"
)

const (
	// DateFormat is how dates are typed and shown in the terminal.
	DateFormat     = "2006-01-02"
	CurrencySymbol = "R$"
)

const (
	// MaxDescriptionWidth truncates descriptions in list tables.
	MaxDescriptionWidth = 40
	ListPageSize        = 15
)
