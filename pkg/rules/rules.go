// Package rules holds the static heuristics that decide which widgets and
// which controls make it into the reference document.
//
// The control rules form an ordered chain evaluated with early return: the
// first matching rule decides. Order is significant because the sub-property
// rule carries a carve-out (keys ending in _typography or _type are parent
// toggles and must be kept) that has to short-circuit before the broader
// substring match.
package rules

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/communitytech/widget-reference/pkg/wordpress"
)

// excludedWidgets lists internal/base widgets Elementor registers but never
// exposes in the editor panel.
var excludedWidgets = map[string]bool{
	"common-base":      true,
	"common":           true,
	"common-optimized": true,
	"inner-section":    true,
	"e-component":      true,
}

// excludedPrefixes marks externally-registered wrapper widgets (legacy WP
// sidebar widgets wrapped for the Elementor panel).
var excludedPrefixes = []string{"wp-widget-"}

// skipContains marks sub-property controls: typography, shadow, gradient,
// background-position, video, and filter internals that only make sense
// through their parent toggle.
var skipContains = []string{
	"_font_family", "_font_size", "_font_weight", "_text_transform", "_font_style",
	"_text_decoration", "_line_height", "_letter_spacing", "_word_spacing",
	"_text_shadow", // keep the _type toggle only
	"_box_shadow",  // keep the _type toggle only
	"_color_stop", "_color_b", "_gradient_type", "_gradient_angle", "_gradient_position",
	"_xpos", "_ypos", "_attachment", "_repeat", "_bg_width",
	"_slideshow_", "_video_link", "_video_start", "_video_end", "_video_fallback",
	"_play_once", "_privacy_mode", "_ken_burns",
	"_blur", "_brightness", "_contrast", "_saturate", "_hue",
	"_stroke_color",
}

// skipSuffixes are the responsive-breakpoint variants of a control key.
var skipSuffixes = []string{
	"_tablet", "_mobile", "_widescreen", "_laptop", "_tablet_extra", "_mobile_extra",
}

// skipTypes are structural panel elements that carry no widget data.
var skipTypes = map[string]bool{
	"hidden":            true,
	"section":           true,
	"tabs":              true,
	"tab":               true,
	"alert":             true,
	"divider":           true,
	"raw_html":          true,
	"deprecated_notice": true,
	"heading":           true,
}

// skipExact are background sub-property keys the substring rules miss.
var skipExact = map[string]bool{
	"background_position":   true,
	"background_size":       true,
	"background_image":      true,
	"background_video":      true,
	"background_color_stop": true,
}

// hoverSubProperties, combined with "hover_", marks hover variants of
// background sub-controls.
var hoverSubProperties = []string{"_position", "_size", "_image", "_video", "_slideshow"}

// ExcludedWidget reports whether a widget identifier is filtered out before
// any detail fetch.
func ExcludedWidget(name string) bool {
	if excludedWidgets[name] {
		return true
	}
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// PracticalWidgets filters the list-endpoint identifiers and returns the
// fetch worklist in lexicographic order.
func PracticalWidgets(widgets map[string]json.RawMessage) []string {
	practical := make([]string, 0, len(widgets))
	for name := range widgets {
		if ExcludedWidget(name) {
			continue
		}
		practical = append(practical, name)
	}
	sort.Strings(practical)
	return practical
}

// SkipControl reports whether a control is dropped from the reference.
// Rules apply in order, first match wins. Note that the advanced tab is
// excluded separately during grouping, not here: a control's effective tab
// may come from its section header.
func SkipControl(key string, ctrl wordpress.Control) bool {
	// Underscore keys are Elementor-internal (advanced-tab convention).
	if strings.HasPrefix(key, "_") {
		return true
	}

	if skipTypes[ctrl.Type] {
		return true
	}

	for _, suffix := range skipSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}

	if skipExact[key] {
		return true
	}

	for _, pattern := range skipContains {
		if strings.Contains(key, pattern) {
			// The parent toggle (e.g. typography_typography,
			// text_shadow_text_shadow_type) is kept even when it
			// matches a sub-property pattern.
			if strings.HasSuffix(key, "_typography") || strings.HasSuffix(key, "_type") {
				return false
			}
			return true
		}
	}

	// Hover variants of background sub-controls.
	if strings.Contains(key, "hover_") {
		for _, sub := range hoverSubProperties {
			if strings.Contains(key, sub) {
				return true
			}
		}
	}

	// css_filters sub-controls; only the master toggle survives.
	if strings.Contains(key, "css_filter") && !strings.HasSuffix(key, "css_filter") {
		return true
	}

	return false
}
