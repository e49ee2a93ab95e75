package config

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// modelSecrets are the credentials the care advisor expects to find in Vault
// rather than in the environment.
var modelSecrets = []string{
	"LLM_API_KEY",
	"GEMINI_API_KEY",
	"OPENAI_API_KEY",
	"SENTIMENT_CLASSIFIER_TOKEN",
}

// VaultProvider reads the care advisor's model credentials from a HashiCorp Vault KV v2 secret.
// A single secret (VAULT_SECRET_PATH) holds one field per configuration key, for example
// GEMINI_API_KEY or OPENAI_API_KEY.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The token is the Vault authentication token; "-" counts as unset.
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the secret holding the advisor credentials (e.g., "careadvisor").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	switch {
	case server == "":
		return VaultProvider{}, fmt.Errorf("server is required")
	case token == "" || token == "-":
		return VaultProvider{}, fmt.Errorf("token is required")
	case mountPath == "":
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get returns the credential stored under key in the advisor secret.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.read(ctx)
	if err != nil {
		return "", err
	}
	return secretValue(vp.secretPath, data, key)
}

func (vp VaultProvider) read(ctx context.Context) (map[string]any, error) {
	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}
	return secret.Data, nil
}

// secretValue extracts key from the secret data. API keys pasted into Vault often carry a
// trailing newline, so values are trimmed and a blank value counts as missing.
func secretValue(secretPath string, data map[string]any, key string) (string, error) {
	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s: key %s is not a string", secretPath, key)
	}

	strValue = strings.TrimSpace(strValue)
	if strValue == "" {
		return "", fmt.Errorf("vault secret %s: key %s is empty", secretPath, key)
	}
	return strValue, nil
}

// presentModelSecrets lists the model credentials the secret data actually carries.
func presentModelSecrets(secretPath string, data map[string]any) []string {
	var present []string
	for _, key := range modelSecrets {
		if _, err := secretValue(secretPath, data, key); err == nil {
			present = append(present, key)
		}
	}
	return present
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider registers Vault behind the environment as the source of model credentials.
// Vault is optional: leaving VAULT_ADDR as "-" keeps environment variables as the only source.
type InitVaultProvider struct {
	Logger     *log.Logger `resolve:""`
	Server     string      `config:"VAULT_ADDR" default:"-"`
	Token      string      `config:"VAULT_TOKEN" default:"-"`
	MountPath  string      `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string      `config:"VAULT_SECRET_PATH" default:"careadvisor"`
}

// Initialize reads the advisor secret once so a bad address or token fails at startup,
// then installs an env-first composite provider globally.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "" || ivp.Server == "-" {
		ivp.Logger.Print("ConfigProvider: vault disabled, using environment variables")
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	data, err := vaultProvider.read(ctx)
	if err != nil {
		return ctx, fmt.Errorf("failed to read vault secret %s/%s: %w", ivp.MountPath, ivp.SecretPath, err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	present := presentModelSecrets(ivp.SecretPath, data)
	if len(present) == 0 {
		ivp.Logger.Printf("ConfigProvider: vault secret %s holds no model credentials", ivp.SecretPath)
	} else {
		ivp.Logger.Printf("ConfigProvider: vault at %s provides %s", ivp.Server, strings.Join(present, ", "))
	}
	return ctx, nil
}
