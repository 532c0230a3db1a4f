package codemod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAttribute(t *testing.T) {
	const attr = `component="div"`

	tests := []struct {
		name      string
		content   string
		want      string
		wantCount int
	}{
		{
			name:      "first_attribute",
			content:   `<Box component="div" sx={{ p: 2 }}>`,
			want:      `<Box sx={{ p: 2 }}>`,
			wantCount: 1,
		},
		{
			name:      "last_attribute",
			content:   `<Box sx={{ p: 2 }} component="div">`,
			want:      `<Box sx={{ p: 2 }}>`,
			wantCount: 1,
		},
		{
			name:      "middle_keeps_order",
			content:   `<Box id="a" component="div" className="b">`,
			want:      `<Box id="a" className="b">`,
			wantCount: 1,
		},
		{
			name:      "only_attribute",
			content:   `<Box component="div">hi</Box>`,
			want:      `<Box>hi</Box>`,
			wantCount: 1,
		},
		{
			name:      "self_closing",
			content:   `<Box component="div" />`,
			want:      `<Box />`,
			wantCount: 1,
		},
		{
			name:      "multiline_tag",
			content:   "<Box\n  component=\"div\"\n  sx={{ p: 2 }}\n>",
			want:      "<Box\n  sx={{ p: 2 }}\n>",
			wantCount: 1,
		},
		{
			name:      "arrow_function_in_expression",
			content:   `<Box onClick={() => a > b} component="div">`,
			want:      `<Box onClick={() => a > b}>`,
			wantCount: 1,
		},
		{
			name:      "gt_inside_string_value",
			content:   `<Box title="a > b" component="div">`,
			want:      `<Box title="a > b">`,
			wantCount: 1,
		},
		{
			name:      "attribute_text_inside_expression_untouched",
			content:   `<Box render={x => <span component="div" />}>`,
			want:      `<Box render={x => <span component="div" />}>`,
			wantCount: 0,
		},
		{
			name:      "other_element_untouched",
			content:   `<Stack component="div"><BoxItem component="div" /></Stack>`,
			want:      `<Stack component="div"><BoxItem component="div" /></Stack>`,
			wantCount: 0,
		},
		{
			name:      "other_value_untouched",
			content:   `<Box component="span">`,
			want:      `<Box component="span">`,
			wantCount: 0,
		},
		{
			name:      "longer_attribute_name_untouched",
			content:   `<Box data-component="div">`,
			want:      `<Box data-component="div">`,
			wantCount: 0,
		},
		{
			name:      "multiple_tags",
			content:   "<Box component=\"div\">\n  <Box component=\"div\" p={1} />\n</Box>",
			want:      "<Box>\n  <Box p={1} />\n</Box>",
			wantCount: 2,
		},
		{
			name:      "spread_without_space",
			content:   `<Box component="div"{...props}>`,
			want:      `<Box{...props}>`,
			wantCount: 1,
		},
		{
			name:      "no_tags",
			content:   "const a = 1;\n",
			want:      "const a = 1;\n",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := StripAttribute(tt.content, "Box", attr)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestStripAttributeEmptyArgs(t *testing.T) {
	got, count := StripAttribute(`<Box component="div">`, "", `component="div"`)
	assert.Equal(t, `<Box component="div">`, got)
	assert.Zero(t, count)
}
