package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds gaiat configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Catalog CatalogConfig `toml:"catalog"`
	Node    NodeConfig    `toml:"node"`
	Chat    ChatConfig    `toml:"chat"`
	Setup   SetupConfig   `toml:"setup"`
}

// UIConfig controls display options.
type UIConfig struct {
	Emoji bool `toml:"emoji"`
	Color bool `toml:"color"`
}

// CatalogConfig controls where model configurations are discovered.
type CatalogConfig struct {
	ListingURL     string `toml:"listing_url"`
	ConfigTemplate string `toml:"config_template"` // %s is the model identifier
}

// NodeConfig controls how the Gaia node runtime is invoked.
type NodeConfig struct {
	Binary        string `toml:"binary"`
	InstallScript string `toml:"install_script"`
}

// ChatConfig controls the chat completion endpoint.
type ChatConfig struct {
	Endpoint     string `toml:"endpoint"`
	Model        string `toml:"model"`
	APIKeyEnv    string `toml:"api_key_env"`
	SystemPrompt string `toml:"system_prompt"`
}

// SetupConfig records guided setup progress.
type SetupConfig struct {
	Complete bool   `toml:"complete"`
	Model    string `toml:"model"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{Emoji: true, Color: true},
		Catalog: CatalogConfig{
			ListingURL:     "https://api.github.com/repos/GaiaNet-AI/node-configs/contents",
			ConfigTemplate: "https://raw.githubusercontent.com/GaiaNet-AI/node-configs/main/%s/config.json",
		},
		Node: NodeConfig{
			Binary:        "gaianet",
			InstallScript: "https://github.com/GaiaNet-AI/gaianet-node/releases/latest/download/install.sh",
		},
		Chat: ChatConfig{
			Endpoint:  "http://localhost:8080",
			Model:     "default",
			APIKeyEnv: "GAIA_API_KEY",
		},
	}
}

// ConfigDir returns the gaiat config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gaiat")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() *Config {
	cfg := Default()
	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}
	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// APIKey resolves the chat API key from the configured environment variable.
func (c *Config) APIKey() string {
	if c.Chat.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Chat.APIKeyEnv)
}
