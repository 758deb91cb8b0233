package rules

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/communitytech/widget-reference/pkg/wordpress"
)

func TestExcludedWidget(t *testing.T) {
	tests := []struct {
		name   string
		widget string
		want   bool
	}{
		{"exact match common-base", "common-base", true},
		{"exact match common", "common", true},
		{"exact match common-optimized", "common-optimized", true},
		{"exact match inner-section", "inner-section", true},
		{"exact match e-component", "e-component", true},
		{"wrapper prefix", "wp-widget-archives", true},
		{"wrapper prefix alone", "wp-widget-", true},
		{"ordinary widget", "heading", false},
		{"prefix only inside name", "my-wp-widget-thing", false},
		{"near miss", "common-extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExcludedWidget(tt.widget); got != tt.want {
				t.Errorf("ExcludedWidget(%q) = %v, want %v", tt.widget, got, tt.want)
			}
		})
	}
}

func TestPracticalWidgets(t *testing.T) {
	widgets := map[string]json.RawMessage{
		"heading":            json.RawMessage(`{}`),
		"common-base":        json.RawMessage(`{}`),
		"wp-widget-archives": json.RawMessage(`{}`),
		"button":             json.RawMessage(`{}`),
		"inner-section":      json.RawMessage(`{}`),
		"image":              json.RawMessage(`{}`),
	}

	got := PracticalWidgets(widgets)
	want := []string{"button", "heading", "image"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PracticalWidgets() = %v, want %v", got, want)
	}
}

func TestSkipControl(t *testing.T) {
	tests := []struct {
		name string
		key  string
		ctrl wordpress.Control
		want bool
	}{
		{
			name: "underscore key",
			key:  "_margin",
			ctrl: wordpress.Control{Type: "dimensions"},
			want: true,
		},
		{
			name: "underscore key wins over any type",
			key:  "_element_id",
			ctrl: wordpress.Control{Type: "text"},
			want: true,
		},
		{
			name: "section type",
			key:  "section_title",
			ctrl: wordpress.Control{Type: "section"},
			want: true,
		},
		{
			name: "hidden type",
			key:  "legacy_flag",
			ctrl: wordpress.Control{Type: "hidden"},
			want: true,
		},
		{
			name: "heading type",
			key:  "style_note",
			ctrl: wordpress.Control{Type: "heading"},
			want: true,
		},
		{
			name: "responsive tablet suffix",
			key:  "title_color_tablet",
			ctrl: wordpress.Control{Type: "color"},
			want: true,
		},
		{
			name: "responsive mobile_extra suffix",
			key:  "align_mobile_extra",
			ctrl: wordpress.Control{Type: "choose"},
			want: true,
		},
		{
			name: "background sub-property exact",
			key:  "background_image",
			ctrl: wordpress.Control{Type: "media"},
			want: true,
		},
		{
			name: "typography sub-property",
			key:  "title_font_family",
			ctrl: wordpress.Control{Type: "font"},
			want: true,
		},
		{
			name: "gradient sub-property",
			key:  "background_gradient_angle",
			ctrl: wordpress.Control{Type: "slider"},
			want: true,
		},
		{
			name: "shadow toggle kept despite pattern match",
			key:  "title_text_shadow_type",
			ctrl: wordpress.Control{Type: "switcher"},
			want: false,
		},
		{
			name: "box shadow toggle kept",
			key:  "button_box_shadow_type",
			ctrl: wordpress.Control{Type: "switcher"},
			want: false,
		},
		{
			name: "typography suffix kept despite pattern match",
			key:  "title_font_family_typography",
			ctrl: wordpress.Control{Type: "switcher"},
			want: false,
		},
		{
			name: "hover background position",
			key:  "button_background_hover_position",
			ctrl: wordpress.Control{Type: "select"},
			want: true,
		},
		{
			name: "hover slideshow",
			key:  "overlay_hover_slideshow_loop",
			ctrl: wordpress.Control{Type: "switcher"},
			want: true,
		},
		{
			name: "hover without sub-property",
			key:  "button_hover_animation",
			ctrl: wordpress.Control{Type: "select"},
			want: false,
		},
		{
			name: "css filter sub-control",
			key:  "image_css_filter_custom",
			ctrl: wordpress.Control{Type: "slider"},
			want: true,
		},
		{
			name: "css filter master toggle kept",
			key:  "image_css_filters_css_filter",
			ctrl: wordpress.Control{Type: "select"},
			want: false,
		},
		{
			name: "plain content control",
			key:  "title",
			ctrl: wordpress.Control{Type: "textarea"},
			want: false,
		},
		{
			name: "plain switcher",
			key:  "show_title",
			ctrl: wordpress.Control{Type: "switcher"},
			want: false,
		},
		{
			name: "no type at all",
			key:  "mystery",
			ctrl: wordpress.Control{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkipControl(tt.key, tt.ctrl); got != tt.want {
				t.Errorf("SkipControl(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
