package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# fxjournal Configuration

[journal]
# Default lookback window: "all" or a day count ("7", "30", "90", "365")
default_range = "30"
# Number of pairs shown on the dashboard shortlist
top_pairs_limit = 4
# Account base used for the balance stat (the journal itself tracks pips)
starting_balance = 20000.0
# Chart span in days when the range is "all"
chart_days = 30
# Load the bundled sample trades on startup
seed_sample_data = true

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04"
`

// createTemplateConfig writes a commented default config.toml so a
// first run leaves something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
