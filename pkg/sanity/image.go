package sanity

import (
	"fmt"
	"regexp"
)

// Asset refs look like "image-<id>-<width>x<height>-<format>".
var imageRefPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+x\d+)-([a-z0-9]+)$`)

// ImageURL resolves an image asset ref to its CDN URL, requesting
// format negotiation and the gallery quality level.
func (c *Client) ImageURL(img Image) (string, error) {
	m := imageRefPattern.FindStringSubmatch(img.Asset.Ref)
	if m == nil {
		return "", fmt.Errorf("sanity: malformed image ref %q", img.Asset.Ref)
	}
	id, dims, format := m[1], m[2], m[3]

	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s?auto=format&q=85",
		c.cfg.ProjectID, c.cfg.Dataset, id, dims, format), nil
}

// ImageURLs resolves a list of gallery images to CDN URLs, skipping any
// with malformed refs so one bad asset doesn't empty the page.
func (c *Client) ImageURLs(images []Image) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		u, err := c.ImageURL(img)
		if err != nil {
			continue
		}
		urls = append(urls, u)
	}
	return urls
}
