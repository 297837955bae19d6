package news

// Bucket classifies where in the screen an article is shown.
type Bucket int

const (
	BucketFeatured Bucket = iota
	BucketBriefs
	BucketPopular
	BucketRecent
)

// String returns the display title for a bucket section.
func (b Bucket) String() string {
	switch b {
	case BucketFeatured:
		return "Featured"
	case BucketBriefs:
		return "Briefs"
	case BucketPopular:
		return "Popular"
	case BucketRecent:
		return "Recently published"
	default:
		return ""
	}
}

// featuredIndex is the position of the featured article in a fully
// populated stream.
const featuredIndex = 3

const (
	briefsEnd    = 3 // indices 0..2
	popularStart = 4
	popularEnd   = 7 // indices 4..6
	recentStart  = 7
)

// Buckets holds the bucket assignment for one snapshot's articles.
// Any bucket may be empty on a short list.
type Buckets struct {
	Featured []Article
	Briefs   []Article
	Popular  []Article
	Recent   []Article
}

// AssignBuckets slices an ordered article list into display buckets.
// Ranges clamp to the population rather than assuming a minimum count:
// the featured slot degrades to the first article when fewer than four
// exist, and trailing buckets simply come up empty.
func AssignBuckets(articles []Article) Buckets {
	var b Buckets
	if len(articles) == 0 {
		return b
	}

	if f, ok := FallbackDetail(articles); ok {
		b.Featured = []Article{f}
	}
	b.Briefs = clampRange(articles, 0, briefsEnd)
	b.Popular = clampRange(articles, popularStart, popularEnd)
	if recentStart < len(articles) {
		b.Recent = articles[recentStart:]
	}
	return b
}

// FallbackDetail returns the article shown in the detail pane when no
// explicit selection matches: the featured article. On lists shorter
// than four it degrades to the first article; an empty list has no
// fallback.
func FallbackDetail(articles []Article) (Article, bool) {
	switch {
	case len(articles) > featuredIndex:
		return articles[featuredIndex], true
	case len(articles) > 0:
		return articles[0], true
	default:
		return Article{}, false
	}
}

func clampRange(articles []Article, start, end int) []Article {
	if start >= len(articles) {
		return nil
	}
	if end > len(articles) {
		end = len(articles)
	}
	return articles[start:end]
}
