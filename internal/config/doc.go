// Package config provides configuration loading for hxglue.
//
// Configuration lives in hxglue.json in the working directory. Every field
// can be overridden with an HXGLUE_* environment variable; a .env file next
// to hxglue.json supplies variables the environment does not already set.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "live": true
//	  },
//	  "toast": {
//	    "containerId": "toast-container",
//	    "displayMs": 4000,
//	    "leaveMs": 300,
//	    "trustedMarkup": false,
//	    "triggerHeaders": ["HX-Trigger"]
//	  },
//	  "upstream": {
//	    "url": "http://localhost:8080",
//	    "timeoutMs": 10000,
//	    "target": "app"
//	  },
//	  "metrics": { "namespace": "hxglue" },
//	  "tracing": { "name": "hxglue" }
//	}
//
// # Environment
//
//	HXGLUE_SERVER_PORT=8080
//	HXGLUE_TOAST_DISPLAY_MS=6000
//	HXGLUE_TOAST_TRIGGER_HEADERS=HX-Trigger,HX-Trigger-After-Swap
//	HXGLUE_UPSTREAM_URL=http://localhost:8080
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    errors.Print(os.Stderr, err)
//	    os.Exit(1)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
