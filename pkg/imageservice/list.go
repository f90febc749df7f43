package imageservice

import (
	"context"
	"strings"

	"github.com/marmos91/imagevault/pkg/store/metadata"
	"github.com/marmos91/imagevault/pkg/store/metadata/filter"
)

// ListQuery carries the optional filter criteria and pagination parameters
// of GET /images. Zero values mean "not supplied".
type ListQuery struct {
	// UserID filters by exact owner match.
	UserID string

	// Title filters by case-sensitive substring match.
	Title string

	// Tags is a comma-separated candidate list; a record matches when it
	// carries any of the candidates.
	Tags string

	// Location filters by case-sensitive substring match.
	Location string

	// CreatedAfter and CreatedBefore are inclusive ISO-8601 bounds on the
	// record creation timestamp.
	CreatedAfter  string
	CreatedBefore string

	// Limit is the requested page size. Zero selects the default; values
	// above the maximum are clamped silently.
	Limit int

	// Cursor is the opaque continuation token from a previous page.
	Cursor string
}

// ListResult is the success payload of a listing.
type ListResult struct {
	// Images are the matched records for this page, storage key stripped.
	Images []ImageView `json:"images"`

	// Count is the number of records returned.
	Count int `json:"count"`

	// ScannedCount is the number of records the store examined, including
	// ones the filter rejected.
	ScannedCount int `json:"scanned_count"`

	// HasMore indicates further results may exist. A page can be empty
	// with HasMore true when the filter rejected an entire scanned page;
	// callers must follow the cursor rather than treat an empty page as
	// the end.
	HasMore bool `json:"has_more"`

	// NextCursor resumes the listing. Only set when HasMore is true.
	NextCursor string `json:"last_evaluated_key,omitempty"`
}

// buildFilter translates the supplied criteria into one expression: each
// present criterion is ANDed; the tags criterion is an OR of membership
// tests across its comma-separated candidates. No criteria yields an empty
// And, which accepts every record.
func buildFilter(q ListQuery) filter.Expr {
	var clauses []filter.Expr

	if q.UserID != "" {
		clauses = append(clauses, filter.Eq(filter.FieldUserID, q.UserID))
	}

	if q.Title != "" {
		clauses = append(clauses, filter.Contains(filter.FieldTitle, q.Title))
	}

	if q.Tags != "" {
		var tagClauses []filter.Expr
		for _, tag := range strings.Split(q.Tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			tagClauses = append(tagClauses, filter.Contains(filter.FieldTags, tag))
		}
		if len(tagClauses) > 0 {
			clauses = append(clauses, filter.Or(tagClauses...))
		}
	}

	if q.Location != "" {
		clauses = append(clauses, filter.Contains(filter.FieldLocation, q.Location))
	}

	if q.CreatedAfter != "" {
		clauses = append(clauses, filter.Gte(filter.FieldCreatedAt, q.CreatedAfter))
	}

	if q.CreatedBefore != "" {
		clauses = append(clauses, filter.Lte(filter.FieldCreatedAt, q.CreatedBefore))
	}

	return filter.And(clauses...)
}

// List runs one bounded scan pass over the metadata store and packages the
// pagination contract.
//
// The store's page boundary applies before filtering, so ScannedCount can
// exceed Count and a fully filtered page legitimately returns zero records
// with HasMore still true. No ordering is guaranteed across pages.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	var cursor []byte
	if q.Cursor != "" {
		var apiErr *Error
		cursor, apiErr = decodeCursor(q.Cursor)
		if apiErr != nil {
			return nil, apiErr
		}
	}

	scan, err := s.metadata.Scan(ctx, metadata.ScanOptions{
		Filter: filter.Predicate(buildFilter(q)),
		Limit:  limit,
		Cursor: cursor,
	})
	if err != nil {
		if metadata.IsInvalidCursor(err) {
			return nil, &Error{
				Status:  400,
				Code:    CodeInvalidPagination,
				Message: "Invalid last_evaluated_key format",
			}
		}
		return nil, internalError(err)
	}

	images := make([]ImageView, 0, len(scan.Records))
	for _, record := range scan.Records {
		images = append(images, viewOf(record))
	}

	result := &ListResult{
		Images:       images,
		Count:        len(images),
		ScannedCount: scan.ScannedCount,
		HasMore:      scan.HasMore,
	}
	if scan.HasMore {
		result.NextCursor = encodeCursor(scan.Cursor)
	}

	return result, nil
}
