// Package config loads and saves startupcalc preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/store"
)

// Config holds all startupcalc configuration. Entered amounts are never
// stored here; only presentation and export preferences are.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Currency   CurrencyConfig   `toml:"currency"`
	Limits     store.Limits     `toml:"limits"`
	Appearance AppearanceConfig `toml:"appearance"`
	Export     ExportConfig     `toml:"export"`
	Email      EmailConfig      `toml:"email"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	BusinessName string `toml:"business_name,omitempty"`
	ShareURL     string `toml:"share_url"`
	CatalogPath  string `toml:"catalog,omitempty"`
}

// CurrencyConfig controls how amounts are printed.
type CurrencyConfig struct {
	Symbol    string `toml:"symbol"`
	PDFSymbol string `toml:"pdf_symbol"` // core PDF fonts cannot draw every glyph
	Grouping  string `toml:"grouping"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ExportConfig controls where generated documents go.
type ExportConfig struct {
	Dir string `toml:"dir,omitempty"`
}

// EmailConfig holds defaults for the email action.
type EmailConfig struct {
	Recipient string `toml:"recipient,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			ShareURL: "https://startupcalc.com",
		},
		Currency: CurrencyConfig{
			Symbol:    "₹",
			PDFSymbol: "Rs.",
			Grouping:  string(cli.GroupingIndic),
		},
		Limits: store.DefaultLimits(),
		Appearance: AppearanceConfig{
			Theme: "evergreen",
		},
	}
}

// Money builds the formatter for on-screen and markup output.
func (c Config) Money() (cli.Money, error) {
	g, err := cli.ParseGrouping(c.Currency.Grouping)
	if err != nil {
		return cli.Money{}, err
	}
	return cli.Money{Symbol: c.Currency.Symbol, Grouping: g}, nil
}

// pdfStandIns spell out symbols the core PDF fonts cannot draw.
var pdfStandIns = map[string]string{
	"₹": "Rs.",
	"₩": "KRW ",
	"₽": "RUB ",
	"₺": "TRY ",
	"₦": "NGN ",
	"₱": "PHP ",
	"₫": "VND ",
	"₴": "UAH ",
	"₪": "ILS ",
}

// SetSymbol replaces the currency symbol and keeps the PDF symbol in step
// with it: the symbol itself when the core PDF fonts can draw it, otherwise
// a spelled-out stand-in.
func (c *Config) SetSymbol(sym string) {
	c.Currency.Symbol = sym
	c.Currency.PDFSymbol = PDFStandIn(sym)
}

// PDFStandIn returns sym if it fits the core PDF fonts, else a stand-in.
// Unknown symbols fall back to the default "Rs.".
func PDFStandIn(sym string) string {
	if pdfSafe(sym) {
		return sym
	}
	if s, ok := pdfStandIns[sym]; ok {
		return s
	}
	return DefaultConfig().Currency.PDFSymbol
}

// pdfSafe reports whether s fits the cp1252 code page used by the core fonts.
func pdfSafe(s string) bool {
	for _, r := range s {
		if r > 0xFF && r != '€' {
			return false
		}
	}
	return true
}

// PDFMoney builds the formatter used inside PDF documents.
func (c Config) PDFMoney() (cli.Money, error) {
	m, err := c.Money()
	if err != nil {
		return m, err
	}
	if c.Currency.PDFSymbol != "" {
		m.Symbol = c.Currency.PDFSymbol
	}
	return m, nil
}

// ExportDir returns the export directory from env var or config, falling
// back to the working directory.
func ExportDir(cfg Config) string {
	if dir := os.Getenv("STARTUPCALC_EXPORT_DIR"); dir != "" {
		return dir
	}
	if cfg.Export.Dir != "" {
		return cfg.Export.Dir
	}
	return "."
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "startupcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "startupcalc")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Limits.Max < cfg.Limits.Min {
		return cfg, fmt.Errorf("parsing config: limits.max %d below limits.min %d", cfg.Limits.Max, cfg.Limits.Min)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
