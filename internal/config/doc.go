// Package config loads the utemplates configuration document.
//
// The document is JSON with a single recognized field:
//
//	{
//	  "conversions": [
//	    "utemplates.convert.time_rfc3339",
//	    "myapp.convert.money"
//	  ]
//	}
//
// The file path comes from U_TEMPLATING_CONFIG_PATH, falling back to
// u_templating_config.json in the working directory. When that default
// file does not exist the configuration is empty.
//
// # Usage
//
//	cfg, err := config.LoadFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pipeline, err := cfg.Pipeline(convert.Default)
package config
