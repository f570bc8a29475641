package raindrop

// RaindropType values discriminate how a bookmark's permanent copy is
// retrieved: documents are downloadable files, everything else is a cacheable
// web page.
const (
	TypeLink     = "link"
	TypeArticle  = "article"
	TypeImage    = "image"
	TypeVideo    = "video"
	TypeDocument = "document"
	TypeAudio    = "audio"
)

// Raindrop is a single bookmark.
type Raindrop struct {
	ID         int            `json:"_id"`
	Title      string         `json:"title"`
	Excerpt    string         `json:"excerpt,omitempty"`
	Link       string         `json:"link"`
	Domain     string         `json:"domain,omitempty"`
	Type       string         `json:"type"`
	Tags       []string       `json:"tags,omitempty"`
	Cache      *Cache         `json:"cache,omitempty"`
	Collection *CollectionRef `json:"collection,omitempty"`
	Created    string         `json:"created,omitempty"`
	LastUpdate string         `json:"lastUpdate,omitempty"`
}

// IsDocument reports whether the permanent copy of this raindrop is a
// downloadable file rather than cached page content.
func (r *Raindrop) IsDocument() bool {
	return r.Type == TypeDocument
}

// CollectionRef is the embedded collection pointer on a raindrop.
type CollectionRef struct {
	ID int `json:"$id"`
}

// Collection is a group of raindrops.
type Collection struct {
	ID     int    `json:"_id"`
	Title  string `json:"title"`
	Count  int    `json:"count"`
	Public bool   `json:"public"`
}

// Tag is a tag with its usage count.
type Tag struct {
	Name  string `json:"_id"`
	Count int    `json:"count"`
}

// User is the authenticated account.
type User struct {
	ID       int    `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Pro      bool   `json:"pro"`
}
