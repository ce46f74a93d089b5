package freshrss

import (
	"reflect"
	"testing"
)

func TestMapItem(t *testing.T) {
	item := StreamItem{
		ID:        "tag:google.com,2005:reader/item/0000abcd",
		Title:     "测试文章",
		Published: 1735689600, // 2025-01-01T00:00:00Z
		Alternate: []Alternate{
			{Href: "https://example.com/a"},
			{Href: "https://example.com/b"},
		},
		Origin:      &Origin{Title: "测试源"},
		Categories:  []string{"Tech"},
		Annotations: []Annotation{{ID: "user/label/Important"}},
	}

	got := MapItem(item)

	if got.ID != item.ID {
		t.Errorf("ID = %q, want %q", got.ID, item.ID)
	}
	if got.Link != "https://example.com/a" {
		t.Errorf("Link = %q, 应取第一个 alternate", got.Link)
	}
	if got.SourceName != "测试源" {
		t.Errorf("SourceName = %q", got.SourceName)
	}
	if got.Published != "2025-01-01T00:00:00Z" {
		t.Errorf("Published = %q, want 2025-01-01T00:00:00Z", got.Published)
	}
	// categories 在前、annotations 在后，保序且不去重
	wantTags := []string{"Tech", "user/label/Important"}
	if !reflect.DeepEqual(got.Tags, wantTags) {
		t.Errorf("Tags = %v, want %v", got.Tags, wantTags)
	}
}

// 所有可选字段缺失时取空值，映射不出错
func TestMapItemMissingFields(t *testing.T) {
	got := MapItem(StreamItem{ID: "0000abcd"})

	if got.Title != "" {
		t.Errorf("Title = %q, want empty", got.Title)
	}
	if got.Link != "" {
		t.Errorf("Link = %q, want empty", got.Link)
	}
	if got.SourceName != "" {
		t.Errorf("SourceName = %q, want empty", got.SourceName)
	}
	if len(got.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", got.Tags)
	}
}

func TestMapItemDuplicateTagsKept(t *testing.T) {
	got := MapItem(StreamItem{
		ID:          "x",
		Categories:  []string{"Tech", "Tech"},
		Annotations: []Annotation{{ID: "Tech"}},
	})
	if len(got.Tags) != 3 {
		t.Errorf("Tags = %v, 不应去重", got.Tags)
	}
}
