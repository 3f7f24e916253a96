package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"records_file":       "./records.json",
		"strict":             false,
		"check_screenshots":  false,
		"skip_confirmations": false,
		"no_color":           false,
	}
}
