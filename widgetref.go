package widgetref

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/communitytech/widget-reference/pkg/formatter"
	"github.com/communitytech/widget-reference/pkg/rules"
	"github.com/communitytech/widget-reference/pkg/wordpress"
)

// Options configures a reference generation run.
type Options struct {
	SiteURL  string // WordPress site root, e.g. https://example.com
	Username string
	Password string // WordPress application password
	Logger   Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the generation output.
type Result struct {
	Markdown   string // the assembled reference document
	Total      int    // widgets in the fetch worklist
	Rendered   int    // widgets that made it into the document
	Skipped    int    // widgets dropped after a failed detail fetch
	Categories int    // distinct primary categories rendered
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the reference generation pipeline and returns the result.
//
// The pipeline is fully sequential: one list call, then one detail call per
// surviving widget in lexicographic order. A failed list call is fatal; a
// failed detail call skips that widget and continues, so the document always
// reflects every widget that could be fetched.
func Run(opts Options) (*Result, error) {
	client := wordpress.NewClient(opts.SiteURL, opts.Username, opts.Password)

	list, err := client.ListWidgets()
	if err != nil {
		return nil, fmt.Errorf("fetch widget list: %w", err)
	}

	worklist := rules.PracticalWidgets(list.Widgets)
	opts.logInfo("Fetching %d widgets...", len(worklist))

	byCategory := make(map[string][]string)
	skipped := 0
	for i, name := range worklist {
		detail, err := client.GetWidget(name)
		if err != nil {
			opts.logWarn("SKIP %s: %v", name, err)
			skipped++
			continue
		}

		category := formatter.PrimaryCategory(detail.Categories)
		byCategory[category] = append(byCategory[category], formatter.Widget(name, detail))

		if (i+1)%20 == 0 {
			opts.logInfo("  %d/%d...", i+1, len(worklist))
		}
	}

	markdown := formatter.Document(siteHost(opts.SiteURL), byCategory)

	return &Result{
		Markdown:   markdown,
		Total:      len(worklist),
		Rendered:   len(worklist) - skipped,
		Skipped:    skipped,
		Categories: len(byCategory),
	}, nil
}

// siteHost extracts the host from the site URL for the document preamble,
// falling back to the raw value when it does not parse as a URL.
func siteHost(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Host == "" {
		return strings.TrimRight(siteURL, "/")
	}
	return u.Host
}
