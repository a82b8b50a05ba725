// Package requestdata carries the values each pipeline stage produces for the
// rest of the request: the loaded entity, the loaded collection and any
// lookup lists.
package requestdata

import (
	"context"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
)

type requestDataKey struct{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if ctx == nil {
		return nil
	}
	val := ctx.Value(requestDataKey{})
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// RequestData is populated stage by stage. Handlers read it through the
// getters, which return nil/false when a stage did not run.
type RequestData struct {
	entity     *entity.Entity
	collection *collection.View
	lookups    map[lookup.Kind]any
}

func New() *RequestData {
	return &RequestData{lookups: map[lookup.Kind]any{}}
}

func (rd *RequestData) SetEntity(e *entity.Entity) { rd.entity = e }

func (rd *RequestData) Entity() *entity.Entity {
	if rd == nil {
		return nil
	}
	return rd.entity
}

func (rd *RequestData) SetCollection(v *collection.View) { rd.collection = v }

func (rd *RequestData) Collection() *collection.View {
	if rd == nil {
		return nil
	}
	return rd.collection
}

func (rd *RequestData) SetLookup(kind lookup.Kind, rows any) {
	if rd.lookups == nil {
		rd.lookups = map[lookup.Kind]any{}
	}
	rd.lookups[kind] = rows
}

func (rd *RequestData) Lookup(kind lookup.Kind) (any, bool) {
	if rd == nil {
		return nil, false
	}
	rows, ok := rd.lookups[kind]
	return rows, ok
}
