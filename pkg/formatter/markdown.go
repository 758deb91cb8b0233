// Package formatter renders widget schemas as condensed markdown: one inline
// fragment per control, one bullet per (tab, section) group, one block per
// widget, and a final document grouped by category.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/communitytech/widget-reference/pkg/rules"
	"github.com/communitytech/widget-reference/pkg/wordpress"
)

// CategoryOrder lists the categories that lead the document, in display
// order. Categories outside the list follow, sorted lexicographically.
// This is an ordered list, not a set: position is the layout.
var CategoryOrder = []string{
	"basic",
	"general",
	"pro-elements",
	"theme-elements",
	"theme-elements-single",
	"theme-elements-archive",
	"link-in-bio",
}

// tabOrder is the fixed set of tabs surfaced in a widget block. Groups on
// any other tab (and the advanced tab, dropped during grouping) are omitted.
var tabOrder = []string{"content", "style"}

// Control renders a single surviving control as an inline markdown fragment:
// the backtick-quoted key plus a type-specific parenthetical.
func Control(key string, ctrl wordpress.Control) string {
	ctype := ctrl.Type
	if ctype == "" {
		ctype = "unknown"
	}

	// List-shaped options carry no usable keys; show only the bare type.
	if ctrl.HasListOptions() {
		return fmt.Sprintf("`%s` (%s)", key, ctype)
	}

	result := "`" + key + "`"
	optKeys, _ := ctrl.OptionKeys()

	switch {
	case ctype == "select" && len(optKeys) > 0:
		named := make([]string, 0, len(optKeys))
		for _, k := range optKeys {
			if k != "" {
				named = append(named, k)
			}
		}
		if len(named) > 0 {
			if len(named) <= 6 {
				result += " (" + strings.Join(named, ", ") + ")"
			} else {
				result += fmt.Sprintf(" (%s, +%d)", strings.Join(named[:5], ", "), len(named)-5)
			}
		}
	case ctype == "choose":
		result += " (" + strings.Join(optKeys, ", ") + ")"
	case ctype == "repeater":
		result += " (repeater)"
	case ctype == "switcher":
		result += " (on/off)"
	case ctype == "color":
		result += " (color)"
	case ctype == "slider":
		if size, unit, ok := ctrl.SliderDefault(); ok {
			result += fmt.Sprintf(" (slider, default: %s%s)", size, unit)
		} else {
			result += " (slider)"
		}
	case ctype == "dimensions":
		result += " (dimensions)"
	case ctype == "media":
		result += " (media)"
	case ctype == "gallery":
		result += " (gallery)"
	case ctype == "icons":
		result += " (icons)"
	case ctype == "url":
		result += " (url)"
	case ctype == "wysiwyg":
		result += " (wysiwyg)"
	case ctype == "text" || ctype == "textarea" || ctype == "number":
		if def, ok := ctrl.DefaultString(); ok && def != "" && len(def) < 30 {
			result += " (" + ctype + ", default: \"" + def + "\")"
		} else {
			result += " (" + ctype + ")"
		}
	default:
		result += " (" + ctype + ")"
	}

	return result
}

// controlGroup is one (tab, section) bucket of rendered controls.
type controlGroup struct {
	label    string
	tab      string
	controls []string
}

// Widget renders one widget's markdown block: a heading with identifier and
// title, an optional italic keyword line, and one bullet per group of
// surviving controls.
func Widget(name string, detail *wordpress.WidgetDetail) string {
	title := detail.Title
	if title == "" {
		title = name
	}

	lines := []string{fmt.Sprintf("### `%s` — %s", name, title)}
	if len(detail.Keywords) > 0 {
		lines = append(lines, "*"+strings.Join(detail.Keywords, ", ")+"*")
	}

	// Section-header controls carry the label and tab for their siblings.
	sectionLabels := make(map[string]string)
	sectionTabs := make(map[string]string)
	for _, key := range detail.Controls.Keys() {
		ctrl, _ := detail.Controls.Get(key)
		if ctrl.Type != "section" {
			continue
		}
		label := ctrl.Label
		if label == "" {
			label = key
		}
		tab := ctrl.Tab
		if tab == "" {
			tab = "content"
		}
		sectionLabels[key] = label
		sectionTabs[key] = tab
	}

	// Group surviving controls by (tab, section) in first-seen order. A
	// control without a section lands in "other"; a section with no header
	// control keeps its raw key as the label and defaults to content.
	var groupOrder []string
	groups := make(map[string]*controlGroup)
	for _, key := range detail.Controls.Keys() {
		ctrl, _ := detail.Controls.Get(key)
		if rules.SkipControl(key, ctrl) {
			continue
		}

		section := ctrl.Section
		if section == "" {
			section = "other"
		}
		tab := ctrl.Tab
		if tab == "" {
			tab = sectionTabs[section]
			if tab == "" {
				tab = "content"
			}
		}
		// The advanced tab is identical across widgets; omit it wholesale.
		if tab == "advanced" {
			continue
		}

		groupKey := tab + "|" + section
		group, ok := groups[groupKey]
		if !ok {
			label := sectionLabels[section]
			if label == "" {
				label = section
			}
			group = &controlGroup{label: label, tab: tab}
			groups[groupKey] = group
			groupOrder = append(groupOrder, groupKey)
		}
		group.controls = append(group.controls, Control(key, ctrl))
	}

	for _, tab := range tabOrder {
		for _, groupKey := range groupOrder {
			group := groups[groupKey]
			if group.tab != tab || len(group.controls) == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("- **%s** (%s): %s",
				group.label, tab, strings.Join(group.controls, " · ")))
		}
	}

	return strings.Join(lines, "\n")
}

// PrimaryCategory returns the widget's first category, or "uncategorized"
// when the list is absent or empty.
func PrimaryCategory(categories []string) string {
	if len(categories) == 0 {
		return "uncategorized"
	}
	return categories[0]
}

// Document assembles the final markdown reference from per-category widget
// blocks. host names the site the data came from and appears in the
// preamble. Preferred categories render first in CategoryOrder; the rest
// follow lexicographically.
func Document(host string, byCategory map[string][]string) string {
	lines := []string{
		"# Elementor Widget Reference",
		"",
		fmt.Sprintf("Auto-generated from the CommunityTech Widget Registry API on %s.", host),
		"To regenerate: query `GET /wp-json/communitytech/v1/elementor/widgets/<name>` for each widget.",
		"",
		"## Usage Notes",
		"",
		"- **Colors**: always use `__globals__` references — `\"__globals__\": {\"title_color\": \"globals/colors?id=primary\"}`",
		"- **Typography**: use `__globals__` — `\"__globals__\": {\"typography_typography\": \"globals/typography?id=primary\"}`",
		"- **Advanced tab** (margins, padding, motion effects, custom CSS): identical for all widgets, not shown here.",
		"- **Responsive variants** (`_tablet`, `_mobile`): not shown — append suffix to any control key.",
		"- **Full schema**: `GET /wp-json/communitytech/v1/elementor/widgets/<name>` returns every control.",
		"",
		"---",
	}

	appendCategory := func(category string) {
		lines = append(lines, "", "## "+category, "")
		for _, block := range byCategory[category] {
			lines = append(lines, block, "")
		}
	}

	preferred := make(map[string]bool, len(CategoryOrder))
	for _, category := range CategoryOrder {
		preferred[category] = true
		if _, ok := byCategory[category]; ok {
			appendCategory(category)
		}
	}

	var rest []string
	for category := range byCategory {
		if !preferred[category] {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)
	for _, category := range rest {
		appendCategory(category)
	}

	return strings.Join(lines, "\n") + "\n"
}
