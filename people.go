package glean

import (
	"context"
	"fmt"
	"strings"

	"github.com/gleanwork/langchain-glean/internal/api"
	"github.com/gleanwork/langchain-glean/internal/types"
)

// defaultPeoplePageSize is how many directory entries are requested when
// neither the caller nor the retriever supplies a count.
const defaultPeoplePageSize = 10

// PeopleProfileRequest is the structured form of a people-directory query:
// a free-text query and/or a facet filter map, plus an optional page size.
type PeopleProfileRequest struct {
	// Query searches people by name, title, etc.
	Query string
	// Filters narrows by facet, e.g. {"email": "jane@acme.com"}.
	Filters map[string]string
	// PageSize hints how many people to return (1-100).
	PageSize int
}

// Validate checks the request. At least one of Query or Filters must be
// present; the page size, when set, must lie in [1, 100].
func (r PeopleProfileRequest) Validate() error {
	if blank(r.Query) && len(r.Filters) == 0 {
		return &Error{Kind: KindValidation, Message: `at least one of "query" or "filters" must be provided`}
	}
	if r.PageSize != 0 && (r.PageSize < 1 || r.PageSize > 100) {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("page size %d out of range [1, 100]", r.PageSize)}
	}
	return nil
}

// PeopleProfileRetriever queries Glean's people directory and maps entries
// onto Documents.
type PeopleProfileRetriever struct {
	client *Client
	k      int
}

// PeopleRetrieverOption configures a PeopleProfileRetriever.
type PeopleRetrieverOption func(*PeopleProfileRetriever)

// WithPeopleK sets how many profiles are returned per invocation.
func WithPeopleK(k int) PeopleRetrieverOption {
	return func(r *PeopleProfileRetriever) { r.k = k }
}

// NewPeopleProfileRetriever binds a people retriever to an authenticated
// client. The default result count is 10.
func NewPeopleProfileRetriever(c *Client, opts ...PeopleRetrieverOption) *PeopleProfileRetriever {
	r := &PeopleProfileRetriever{client: c, k: defaultPeoplePageSize}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve looks people up by free text.
func (r *PeopleProfileRetriever) Retrieve(ctx context.Context, query string) ([]Document, error) {
	req := types.ListEntitiesRequest{
		EntityType: types.EntityTypePeople,
		Query:      query,
		PageSize:   r.k,
	}
	return r.list(ctx, req)
}

// RetrieveProfiles looks people up with the structured request form.
func (r *PeopleProfileRetriever) RetrieveProfiles(ctx context.Context, req PeopleProfileRequest) ([]Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	wire := types.ListEntitiesRequest{EntityType: types.EntityTypePeople}
	if req.PageSize > 0 {
		wire.PageSize = req.PageSize
	} else {
		wire.PageSize = r.k
	}
	if req.Query != "" {
		wire.Query = req.Query
	}
	if len(req.Filters) > 0 {
		filters := make([]types.FacetFilter, 0, len(req.Filters))
		for field, value := range req.Filters {
			filters = append(filters, types.FacetFilter{
				FieldName: field,
				Values:    []types.FacetFilterValue{{Value: value, RelationType: types.RelationEquals}},
			})
		}
		wire.Filter = filters
	}
	return r.list(ctx, wire)
}

// RetrieveWithRequest passes a raw entity listing request through unchanged,
// for callers needing controls the structured form does not model.
func (r *PeopleProfileRetriever) RetrieveWithRequest(ctx context.Context, req ListEntitiesRequest) ([]Document, error) {
	return r.list(ctx, req)
}

func (r *PeopleProfileRetriever) list(ctx context.Context, req types.ListEntitiesRequest) ([]Document, error) {
	recordCall("listentities")
	resp, err := api.ListEntities(ctx, r.client.http, req)
	if err != nil {
		ce := handleAPIError(err, "people profile search")
		recordFailure("listentities", ce.Kind)
		return nil, ce
	}

	docs := make([]Document, 0, len(resp.Results))
	for _, person := range resp.Results {
		docs = append(docs, buildPersonDocument(person))
	}
	// The vendor may overshoot the page size; trim to what was asked for.
	limit := req.PageSize
	if limit <= 0 {
		limit = r.k
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// buildPersonDocument flattens a directory entry into a Document. The body
// is "name\ntitle" (title line omitted when absent); the metadata map holds
// every non-empty scalar field of the entry's metadata block.
func buildPersonDocument(person types.PersonResult) Document {
	md := make(map[string]string, len(person.Metadata))
	for key, val := range person.Metadata {
		switch v := val.(type) {
		case string:
			if v != "" {
				md[key] = v
			}
		case bool:
			md[key] = fmt.Sprintf("%t", v)
		case float64:
			md[key] = fmt.Sprintf("%v", v)
		}
	}

	name := person.Name
	if name == "" {
		name = "Unknown"
	}
	body := strings.TrimSpace(name + "\n" + md["title"])

	return Document{PageContent: body, Metadata: md}
}

var _ Retriever = (*PeopleProfileRetriever)(nil)
