package envfile

// Keys collected from the operator or generated by the renderer. Fixed
// defaults live in the schema below.
const (
	KeyBotToken   = "BOT_TOKEN"
	KeyAdminIDs   = "ADMIN_IDS"
	KeyBotDomain  = "BOT_DOMAIN"
	KeyAdminEmail = "ADMIN_EMAIL"

	KeyPanelAPIURL = "PANEL_API_URL"
	KeyPanelAPIKey = "PANEL_API_KEY"

	KeyDBHost     = "DB_HOST"
	KeyDBPort     = "DB_PORT"
	KeyDBName     = "DB_NAME"
	KeyDBUser     = "DB_USER"
	KeyDBPassword = "DB_PASSWORD"

	KeyRedisHost     = "REDIS_HOST"
	KeyRedisPort     = "REDIS_PORT"
	KeyRedisPassword = "REDIS_PASSWORD"

	KeyJWTSecret     = "JWT_SECRET"
	KeyWebhookSecret = "WEBHOOK_SECRET"

	KeyWebhookEnabled = "WEBHOOK_ENABLED"
	KeyWebhookDomain  = "WEBHOOK_DOMAIN"
	KeyWebhookPort    = "WEBHOOK_PORT"

	KeyYookassaEnabled   = "YOOKASSA_ENABLED"
	KeyYookassaShopID    = "YOOKASSA_SHOP_ID"
	KeyYookassaSecretKey = "YOOKASSA_SECRET_KEY"
	KeyCryptobotEnabled  = "CRYPTOBOT_ENABLED"
	KeyCryptobotToken    = "CRYPTOBOT_TOKEN"
	KeyStarsEnabled      = "STARS_ENABLED"
)

// EntryKind says where a key's value comes from at render time.
type EntryKind int

const (
	// KindOperator values come from the ConfigMap, falling back to the
	// schema default when one exists.
	KindOperator EntryKind = iota
	// KindFixed values are schema literals, emitted unconditionally.
	KindFixed
	// KindSecret values are generated fresh on every render and never
	// derived from operator input.
	KindSecret
)

// Entry describes one key in the rendered document.
type Entry struct {
	Key      string
	Kind     EntryKind
	Default  string
	Required bool // operator key with no default; render aborts if absent
}

// Group is a comment banner followed by its entries.
type Group struct {
	Banner  string
	Entries []Entry
}

// Schema is the ordered, fixed superset of keys the rendered document
// always contains.
type Schema []Group

// DefaultSchema returns the document layout for the 2GETPRO v2 bot.
func DefaultSchema() Schema {
	return Schema{
		{
			Banner: "Telegram bot",
			Entries: []Entry{
				{Key: KeyBotToken, Kind: KindOperator, Required: true},
				{Key: KeyAdminIDs, Kind: KindOperator, Required: true},
				{Key: KeyBotDomain, Kind: KindOperator, Default: ""},
				{Key: KeyAdminEmail, Kind: KindOperator, Default: ""},
			},
		},
		{
			Banner: "Panel API",
			Entries: []Entry{
				{Key: KeyPanelAPIURL, Kind: KindOperator, Required: true},
				{Key: KeyPanelAPIKey, Kind: KindOperator, Default: ""},
			},
		},
		{
			Banner: "PostgreSQL",
			Entries: []Entry{
				{Key: KeyDBHost, Kind: KindOperator, Default: "localhost"},
				{Key: KeyDBPort, Kind: KindOperator, Default: "5432"},
				{Key: KeyDBName, Kind: KindOperator, Default: "getpro"},
				{Key: KeyDBUser, Kind: KindOperator, Default: "getpro"},
				{Key: KeyDBPassword, Kind: KindOperator, Required: true},
			},
		},
		{
			Banner: "Redis",
			Entries: []Entry{
				{Key: KeyRedisHost, Kind: KindOperator, Default: "localhost"},
				{Key: KeyRedisPort, Kind: KindOperator, Default: "6379"},
				{Key: KeyRedisPassword, Kind: KindOperator, Default: ""},
			},
		},
		{
			Banner: "Security",
			Entries: []Entry{
				{Key: KeyJWTSecret, Kind: KindSecret},
				{Key: KeyWebhookSecret, Kind: KindSecret},
			},
		},
		{
			Banner: "Webhook",
			Entries: []Entry{
				{Key: KeyWebhookEnabled, Kind: KindOperator, Default: "false"},
				{Key: KeyWebhookDomain, Kind: KindOperator, Default: ""},
				{Key: KeyWebhookPort, Kind: KindOperator, Default: "8443"},
			},
		},
		{
			Banner: "Payments",
			Entries: []Entry{
				{Key: KeyYookassaEnabled, Kind: KindOperator, Default: "false"},
				{Key: KeyYookassaShopID, Kind: KindOperator, Default: ""},
				{Key: KeyYookassaSecretKey, Kind: KindOperator, Default: ""},
				{Key: KeyCryptobotEnabled, Kind: KindOperator, Default: "false"},
				{Key: KeyCryptobotToken, Kind: KindOperator, Default: ""},
				{Key: KeyStarsEnabled, Kind: KindOperator, Default: "true"},
			},
		},
		{
			Banner: "Subscription pricing (RUB)",
			Entries: []Entry{
				{Key: "PRICE_1_MONTH", Kind: KindFixed, Default: "150"},
				{Key: "PRICE_3_MONTH", Kind: KindFixed, Default: "400"},
				{Key: "PRICE_6_MONTH", Kind: KindFixed, Default: "750"},
				{Key: "PRICE_12_MONTH", Kind: KindFixed, Default: "1400"},
				{Key: "TRIAL_ENABLED", Kind: KindFixed, Default: "true"},
				{Key: "TRIAL_DAYS", Kind: KindFixed, Default: "3"},
			},
		},
		{
			Banner: "Localization",
			Entries: []Entry{
				{Key: "DEFAULT_LANGUAGE", Kind: KindFixed, Default: "ru"},
				{Key: "TIMEZONE", Kind: KindFixed, Default: "Europe/Moscow"},
			},
		},
		{
			Banner: "Rate limits",
			Entries: []Entry{
				{Key: "RATE_LIMIT_MESSAGES", Kind: KindFixed, Default: "20"},
				{Key: "RATE_LIMIT_WINDOW_SECONDS", Kind: KindFixed, Default: "60"},
			},
		},
		{
			Banner: "Backups",
			Entries: []Entry{
				{Key: "BACKUP_ENABLED", Kind: KindFixed, Default: "true"},
				{Key: "BACKUP_INTERVAL_HOURS", Kind: KindFixed, Default: "24"},
				{Key: "BACKUP_RETENTION_DAYS", Kind: KindFixed, Default: "7"},
			},
		},
		{
			Banner: "Monitoring",
			Entries: []Entry{
				{Key: "LOG_LEVEL", Kind: KindFixed, Default: "INFO"},
				{Key: "HEALTHCHECK_PORT", Kind: KindFixed, Default: "8081"},
			},
		},
	}
}
