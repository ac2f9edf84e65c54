package storeapi

// AppDetails is the parsed appdetails "data" object for one store application.
// Optional scalar fields are nil when absent (or JSON null). Optional lists are
// nil when absent; Categories is a non-nil empty slice when the key was present
// with no entries, since that still produces an (empty) icon line.
type AppDetails struct {
	AppID        int
	Name         string
	AboutTheGame *string
	ReleaseDate  *string
	Genres       []string
	Categories   []int
	Screenshots  []string
	LegalNotice  *string
}

// HasCategories reports whether the categories key was present in the payload.
func (d *AppDetails) HasCategories() bool {
	return d.Categories != nil
}
