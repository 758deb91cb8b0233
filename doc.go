// Package widgetref generates a condensed markdown reference of the
// Elementor widgets registered on a WordPress site, via the CommunityTech
// widget registry REST API.
//
// The CLI lives in cmd/widget-reference; this root package exposes the same
// pipeline as a Go API so that callers can embed generation in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named widgetref:
//
//	import widgetref "github.com/communitytech/widget-reference" // package widgetref
//
// # Quick start
//
//	result, err := widgetref.Run(widgetref.Options{
//	    SiteURL:  "https://example.com",
//	    Username: "admin",
//	    Password: os.Getenv("WORDPRESS_APP_PASSWORD"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Markdown)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # What gets filtered
//
// Internal and wrapper widgets are excluded before any detail fetch, and
// per-control heuristics drop responsive variants, advanced-tab settings,
// and typography/background/filter sub-properties, so each widget block
// shows only its top-level settings. The full control schema remains
// available from the API itself; the document's usage notes say how.
package widgetref
