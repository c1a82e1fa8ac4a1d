package sanity

import (
	"testing"
)

func imageClient() *Client {
	return New(Config{ProjectID: "2b266qdi", Dataset: "production", APIVersion: "2024-01-01"})
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		name        string
		ref         string
		want        string
		expectError bool
	}{
		{
			name: "webp asset",
			ref:  "image-abc123-2000x3000-webp",
			want: "https://cdn.sanity.io/images/2b266qdi/production/abc123-2000x3000.webp?auto=format&q=85",
		},
		{
			name: "jpg asset",
			ref:  "image-Ff3a9-1200x800-jpg",
			want: "https://cdn.sanity.io/images/2b266qdi/production/Ff3a9-1200x800.jpg?auto=format&q=85",
		},
		{
			name:        "missing prefix",
			ref:         "file-abc123-2000x3000-webp",
			expectError: true,
		},
		{
			name:        "missing dimensions",
			ref:         "image-abc123-webp",
			expectError: true,
		},
		{
			name:        "empty ref",
			ref:         "",
			expectError: true,
		},
	}

	c := imageClient()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ImageURL(Image{Asset: ImageAsset{Ref: tt.ref}})
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ImageURL failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ImageURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImageURLs_SkipsMalformedRefs(t *testing.T) {
	c := imageClient()
	urls := c.ImageURLs([]Image{
		{Asset: ImageAsset{Ref: "image-abc123-2000x3000-webp"}},
		{Asset: ImageAsset{Ref: "not-an-image"}},
		{Asset: ImageAsset{Ref: "image-def456-800x600-jpg"}},
	})
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %d: %v", len(urls), urls)
	}
}
