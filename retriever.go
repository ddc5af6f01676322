package glean

import (
	"context"
	"strconv"
	"strings"

	"github.com/gleanwork/langchain-glean/internal/api"
	"github.com/gleanwork/langchain-glean/internal/types"
)

// fallbackPageSize is the floor used when a result-count hint is present
// but no explicit page size was supplied.
const fallbackPageSize = 100

// SearchRetriever maps free-text queries onto Glean's search endpoint and
// the hits back onto Documents.
type SearchRetriever struct {
	client *Client
	k      int // client-side result cap; 0 = unset
}

// SearchRetrieverOption configures a SearchRetriever at construction.
type SearchRetrieverOption func(*SearchRetriever)

// WithK caps the number of documents returned per retrieval. The vendor may
// return more than requested; the cap is applied after mapping.
func WithK(k int) SearchRetrieverOption {
	return func(r *SearchRetriever) { r.k = k }
}

// NewSearchRetriever binds a search retriever to an authenticated client.
func NewSearchRetriever(c *Client, opts ...SearchRetrieverOption) *SearchRetriever {
	r := &SearchRetriever{client: c}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// searchCall collects per-call overrides.
type searchCall struct {
	k                 int
	pageSize          int
	cursor            string
	timeoutMillis     int
	resultTabs        []string
	disableSpellcheck bool
	facets            map[string]string
	extra             map[string]any
}

// SearchOption overrides search parameters for a single call.
type SearchOption func(*searchCall)

// SearchWithK overrides the retriever-level result cap for one call.
func SearchWithK(k int) SearchOption {
	return func(s *searchCall) { s.k = k }
}

// SearchWithPageSize sets the vendor page size explicitly.
func SearchWithPageSize(n int) SearchOption {
	return func(s *searchCall) { s.pageSize = n }
}

// SearchWithCursor resumes a paginated search. The cursor is opaque and is
// passed through unchanged.
func SearchWithCursor(cursor string) SearchOption {
	return func(s *searchCall) { s.cursor = cursor }
}

// SearchWithTimeoutMillis sets the server-side handling deadline.
func SearchWithTimeoutMillis(ms int) SearchOption {
	return func(s *searchCall) { s.timeoutMillis = ms }
}

// SearchWithResultTabs restricts results to the given result tabs.
func SearchWithResultTabs(tabs ...string) SearchOption {
	return func(s *searchCall) { s.resultTabs = tabs }
}

// SearchWithoutSpellcheck disables vendor-side query spell correction.
func SearchWithoutSpellcheck() SearchOption {
	return func(s *searchCall) { s.disableSpellcheck = true }
}

// SearchWithFacet narrows the search to hits whose field equals value.
func SearchWithFacet(field, value string) SearchOption {
	return func(s *searchCall) {
		if s.facets == nil {
			s.facets = make(map[string]string)
		}
		s.facets[field] = value
	}
}

// SearchWithExtra adds an arbitrary field to the outbound payload verbatim.
// Typed fields are never overridden.
func SearchWithExtra(key string, value any) SearchOption {
	return func(s *searchCall) {
		if s.extra == nil {
			s.extra = make(map[string]any)
		}
		s.extra[key] = value
	}
}

// Retrieve returns documents relevant to the query.
func (r *SearchRetriever) Retrieve(ctx context.Context, query string) ([]Document, error) {
	return r.RetrieveWithOptions(ctx, query)
}

// RetrieveWithOptions returns documents relevant to the query with per-call
// overrides applied.
func (r *SearchRetriever) RetrieveWithOptions(ctx context.Context, query string, opts ...SearchOption) ([]Document, error) {
	var call searchCall
	for _, opt := range opts {
		opt(&call)
	}

	req := r.buildSearchRequest(query, call)

	recordCall("search")
	resp, err := api.Search(ctx, r.client.http, req)
	if err != nil {
		ce := handleAPIError(err, "search")
		recordFailure("search", ce.Kind)
		return nil, ce
	}

	docs := make([]Document, 0, len(resp.Results))
	for _, hit := range resp.Results {
		docs = append(docs, buildDocument(hit))
	}
	if k := r.effectiveK(call); k > 0 && len(docs) > k {
		docs = docs[:k]
	}
	return docs, nil
}

func (r *SearchRetriever) effectiveK(call searchCall) int {
	if call.k > 0 {
		return call.k
	}
	return r.k
}

// buildSearchRequest merges the query with the per-call overrides.
//
// Page size resolution: when a result-count hint (k) is in play, the page
// size is max(k, explicit page size, fallback floor) so the vendor returns
// at least k hits; otherwise an explicit page size passes through, and
// absent both the field is omitted and the vendor default applies.
func (r *SearchRetriever) buildSearchRequest(query string, call searchCall) types.SearchRequest {
	req := types.SearchRequest{
		Query:             query,
		Cursor:            call.cursor,
		TimeoutMillis:     call.timeoutMillis,
		ResultTabIDs:      call.resultTabs,
		DisableSpellcheck: call.disableSpellcheck,
		Extra:             call.extra,
	}

	if k := r.effectiveK(call); k > 0 {
		ps := call.pageSize
		if ps <= 0 {
			ps = fallbackPageSize
		}
		req.PageSize = max(k, ps)
	} else if call.pageSize > 0 {
		req.PageSize = call.pageSize
	}

	if len(call.facets) > 0 {
		filters := make([]types.FacetFilter, 0, len(call.facets))
		for field, value := range call.facets {
			filters = append(filters, types.FacetFilter{
				FieldName: field,
				Values:    []types.FacetFilterValue{{Value: value, RelationType: types.RelationEquals}},
			})
		}
		req.RequestOptions = &types.SearchRequestOptions{FacetFilters: filters}
	}
	return req
}

// buildDocument flattens a search hit into a Document. The body is the
// newline-joined non-empty snippets, falling back to the title when no
// snippet text survives.
func buildDocument(hit types.SearchResult) Document {
	var snippets []string
	for _, s := range hit.Snippets {
		if s.Text != "" {
			snippets = append(snippets, s.Text)
		}
	}
	body := strings.Join(snippets, "\n")
	if strings.TrimSpace(body) == "" {
		body = hit.Title
	}

	var docID string
	if hit.Document != nil {
		docID = hit.Document.ID
	}
	md := map[string]string{
		"title":          hit.Title,
		"url":            hit.URL,
		"source":         "glean",
		"document_id":    docID,
		"tracking_token": hit.TrackingToken,
	}

	if doc := hit.Document; doc != nil {
		md["datasource"] = doc.Datasource
		md["doc_type"] = doc.DocType

		if meta := doc.Metadata; meta != nil {
			md["datasource_instance"] = meta.DatasourceInstance
			md["object_type"] = meta.ObjectType
			md["mime_type"] = meta.MimeType
			md["logging_id"] = meta.LoggingID
			md["visibility"] = meta.Visibility
			md["document_category"] = meta.DocumentCategory

			if meta.CreateTime != "" {
				md["create_time"] = meta.CreateTime
			}
			if meta.UpdateTime != "" {
				md["update_time"] = meta.UpdateTime
			}
			if meta.Author != nil {
				md["author"] = meta.Author.Name
				md["author_email"] = meta.Author.Email
			}
			if meta.Interactions != nil && meta.Interactions.Shares != nil {
				days := 0
				if len(meta.Interactions.Shares) > 0 {
					days = meta.Interactions.Shares[0].NumDaysAgo
				}
				md["shared_days_ago"] = strconv.Itoa(days)
			}
		}
	}

	if len(hit.ClusteredResults) > 0 {
		md["clustered_results_count"] = strconv.Itoa(len(hit.ClusteredResults))
	}
	if len(hit.DebugInfo) > 0 {
		md["debug_info"] = string(hit.DebugInfo)
	}

	return Document{PageContent: body, Metadata: md}
}

var _ Retriever = (*SearchRetriever)(nil)
