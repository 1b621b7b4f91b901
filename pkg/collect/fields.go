package collect

import "github.com/2getpro/installer/pkg/envfile"

// Kind selects the validation and prompt behavior for a field.
type Kind int

const (
	// Text is a free-form single-line value.
	Text Kind = iota
	// Token is a Telegram bot token.
	Token
	// IDList is a comma-separated list of numeric Telegram IDs,
	// normalized before it is stored.
	IDList
	// URL must start with http:// or https://.
	URL
	// Email is a local@domain.tld address.
	Email
	// Domain is an RFC-1035-style domain name.
	Domain
	// Password is read without echo; an empty answer generates one.
	Password
	// Toggle is a yes/no question gating its sub-fields.
	Toggle
)

// Field describes one question of the installation dialogue.
type Field struct {
	Key    string
	Prompt string
	// Hint names the expected format; it is shown on every rejection.
	Hint string
	Kind Kind
	// Default is used when the operator submits an empty line. For
	// toggles it must be "true" or "false".
	Default string
	// Optional text fields accept an empty answer.
	Optional bool
	// Sub fields are collected only when a toggle is answered yes.
	Sub []Field
}

// InstallFields is the full interactive flow for a 2GETPRO v2
// installation, in the order the operator is asked.
func InstallFields() []Field {
	return []Field{
		{
			Key:    envfile.KeyBotToken,
			Prompt: "Telegram bot token",
			Hint:   "expected digits:token, as issued by @BotFather",
			Kind:   Token,
		},
		{
			Key:    envfile.KeyAdminIDs,
			Prompt: "Admin Telegram IDs (comma-separated)",
			Hint:   "expected numeric IDs separated by commas, e.g. 111,222",
			Kind:   IDList,
		},
		{
			Key:      envfile.KeyAdminEmail,
			Prompt:   "Admin e-mail (optional)",
			Hint:     "expected local@domain.tld",
			Kind:     Email,
			Optional: true,
		},
		{
			Key:    envfile.KeyPanelAPIURL,
			Prompt: "Panel API URL",
			Hint:   "expected an http:// or https:// URL",
			Kind:   URL,
		},
		{
			Key:      envfile.KeyPanelAPIKey,
			Prompt:   "Panel API key (optional)",
			Kind:     Text,
			Optional: true,
		},
		{Key: envfile.KeyDBHost, Prompt: "PostgreSQL host", Kind: Text, Default: "localhost"},
		{Key: envfile.KeyDBPort, Prompt: "PostgreSQL port", Kind: Text, Default: "5432"},
		{Key: envfile.KeyDBName, Prompt: "Database name", Kind: Text, Default: "getpro"},
		{Key: envfile.KeyDBUser, Prompt: "Database user", Kind: Text, Default: "getpro"},
		{
			Key:    envfile.KeyDBPassword,
			Prompt: "Database password (empty to generate)",
			Kind:   Password,
		},
		{Key: envfile.KeyRedisHost, Prompt: "Redis host", Kind: Text, Default: "localhost"},
		{Key: envfile.KeyRedisPort, Prompt: "Redis port", Kind: Text, Default: "6379"},
		{
			Key:    envfile.KeyRedisPassword,
			Prompt: "Redis password (empty to generate)",
			Kind:   Password,
		},
		{
			Key:     envfile.KeyWebhookEnabled,
			Prompt:  "Configure a webhook",
			Kind:    Toggle,
			Default: "false",
			Sub: []Field{
				{
					Key:    envfile.KeyWebhookDomain,
					Prompt: "Webhook domain",
					Hint:   "expected a domain name, e.g. bot.example.com",
					Kind:   Domain,
				},
				{Key: envfile.KeyWebhookPort, Prompt: "Webhook port", Kind: Text, Default: "8443"},
			},
		},
		{
			Key:     envfile.KeyYookassaEnabled,
			Prompt:  "Enable YooKassa payments",
			Kind:    Toggle,
			Default: "false",
			Sub: []Field{
				{Key: envfile.KeyYookassaShopID, Prompt: "YooKassa shop ID", Kind: Text},
				{Key: envfile.KeyYookassaSecretKey, Prompt: "YooKassa secret key", Kind: Text},
			},
		},
		{
			Key:     envfile.KeyCryptobotEnabled,
			Prompt:  "Enable CryptoBot payments",
			Kind:    Toggle,
			Default: "false",
			Sub: []Field{
				{Key: envfile.KeyCryptobotToken, Prompt: "CryptoBot API token", Kind: Text},
			},
		},
	}
}
