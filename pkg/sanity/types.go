package sanity

// ImageAsset references an uploaded image document.
type ImageAsset struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type"`
}

// Image is an image field as stored on a document.
type Image struct {
	Key   string     `json:"_key,omitempty"`
	Asset ImageAsset `json:"asset"`
	Alt   string     `json:"alt,omitempty"`
}

// PortfolioCategory is a portfolioCategory document: one gallery on the
// portfolio page (weddings, couples, portraits, moments).
type PortfolioCategory struct {
	ID         string  `json:"_id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Subtitle   string  `json:"subtitle"`
	CoverImage *Image  `json:"coverImage,omitempty"`
	Images     []Image `json:"images,omitempty"`
}
