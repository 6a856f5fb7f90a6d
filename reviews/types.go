package reviews

const (
	// DefaultReviewer is used when a review has no author link.
	DefaultReviewer = "Anonymous"
	// DefaultTitle is used when a review has no title node.
	DefaultTitle = "No Title"
	// DefaultBaseURL is prefixed to site-relative permalinks.
	DefaultBaseURL = "https://www.imdb.com"
	// DefaultSiteName labels the permalink line in rendered output.
	DefaultSiteName = "IMDb"

	// MaxRating is the top of the rating scale and the width of the star bar.
	MaxRating = 10
)

// Review is one user review parsed from a review container node.
type Review struct {
	Reviewer string
	// Rating is nil when the page did not carry a usable score.
	Rating    *int
	Title     string
	Body      string
	Permalink string
}
