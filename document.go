package wikiexport

// Document is a fetched wiki page: the decoded HTML text plus the URL it
// was downloaded from. Documents are ephemeral; they exist only between
// fetch and extraction, except for the optional verbatim side-save.
type Document struct {
	URL  string
	HTML string
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}
