package controllers

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// memCollection is an in-memory Collection for handler tests. It evaluates
// only the filter and update operators the controllers actually use.
type memCollection struct {
	mu   sync.Mutex
	docs []bson.M
}

func newMemCollection(docs ...interface{}) *memCollection {
	mc := &memCollection{}
	for _, doc := range docs {
		normalized := toDoc(doc)
		if _, ok := normalized["_id"]; !ok {
			normalized["_id"] = primitive.NewObjectID()
		}
		mc.docs = append(mc.docs, normalized)
	}
	return mc
}

// toDoc round-trips a value through bson so stored documents carry the
// same types a real collection would return.
func toDoc(v interface{}) bson.M {
	raw, err := bson.Marshal(v)
	if err != nil {
		panic(err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		panic(err)
	}
	return doc
}

func (mc *memCollection) len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.docs)
}

func (mc *memCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	doc := toDoc(document)
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	mc.docs = append(mc.docs, doc)
	return &mongo.InsertOneResult{InsertedID: doc["_id"]}, nil
}

func (mc *memCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	mc.mu.Lock()
	var matched []bson.M
	for _, doc := range mc.docs {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	mc.mu.Unlock()

	var sortSpec interface{}
	var skip, limit int64 = 0, -1
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.Sort != nil {
			sortSpec = opt.Sort
		}
		if opt.Skip != nil {
			skip = *opt.Skip
		}
		if opt.Limit != nil {
			limit = *opt.Limit
		}
	}

	if sortSpec != nil {
		applySort(matched, sortSpec.(bson.D))
	}
	if skip > 0 {
		if skip > int64(len(matched)) {
			skip = int64(len(matched))
		}
		matched = matched[skip:]
	}
	if limit >= 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}

	out := make([]interface{}, len(matched))
	for i, doc := range matched {
		out[i] = doc
	}
	return mongo.NewCursorFromDocuments(out, nil, nil)
}

func (mc *memCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for _, doc := range mc.docs {
		if matches(doc, filter) {
			return mongo.NewSingleResultFromDocument(doc, nil, nil)
		}
	}
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
}

func (mc *memCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for _, doc := range mc.docs {
		if !matches(doc, filter) {
			continue
		}
		u := update.(bson.M)
		if set, ok := u["$set"].(bson.M); ok {
			for key, value := range set {
				doc[key] = value
			}
		}
		if inc, ok := u["$inc"].(bson.M); ok {
			for key, value := range inc {
				current, _ := numeric(doc[key])
				delta, _ := numeric(value)
				doc[key] = int64(current) + int64(delta)
			}
		}
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (mc *memCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for i, doc := range mc.docs {
		if matches(doc, filter) {
			mc.docs = append(mc.docs[:i], mc.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (mc *memCollection) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	var kept []bson.M
	var deleted int64
	for _, doc := range mc.docs {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	mc.docs = kept
	return &mongo.DeleteResult{DeletedCount: deleted}, nil
}

func (mc *memCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	var total int64
	for _, doc := range mc.docs {
		if matches(doc, filter) {
			total++
		}
	}
	return total, nil
}

func matches(doc bson.M, filter interface{}) bool {
	f, ok := filter.(bson.M)
	if !ok {
		panic("memCollection: filter must be bson.M")
	}
	for key, cond := range f {
		value := lookup(doc, key)
		if ops, ok := cond.(bson.M); ok {
			for op, arg := range ops {
				switch op {
				case "$gte":
					left, lok := numeric(value)
					right, rok := numeric(arg)
					if !lok || !rok || left < right {
						return false
					}
				case "$in":
					if !containedIn(value, arg) {
						return false
					}
				default:
					panic("memCollection: unsupported operator " + op)
				}
			}
			continue
		}
		if !equal(value, cond) {
			return false
		}
	}
	return true
}

// lookup resolves a possibly dotted field path against a document. Nested
// documents may surface as bson.M or bson.D depending on how they were
// normalized.
func lookup(doc bson.M, path string) interface{} {
	var current interface{} = doc
	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case bson.M:
			current = v[part]
		case bson.D:
			found := false
			for _, elem := range v {
				if elem.Key == part {
					current = elem.Value
					found = true
					break
				}
			}
			if !found {
				return nil
			}
		default:
			return nil
		}
	}
	return current
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return float64(n), true
	case primitive.DateTime:
		return float64(n), true
	}
	return 0, false
}

func equal(a, b interface{}) bool {
	if fa, aok := numeric(a); aok {
		fb, bok := numeric(b)
		return bok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func containedIn(value, arg interface{}) bool {
	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if equal(value, rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}

func applySort(docs []bson.M, spec bson.D) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, elem := range spec {
			c := compareValues(lookup(docs[i], elem.Key), lookup(docs[j], elem.Key))
			if c == 0 {
				continue
			}
			direction, _ := numeric(elem.Value)
			if direction < 0 {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareValues(a, b interface{}) int {
	if fa, aok := numeric(a); aok {
		if fb, bok := numeric(b); bok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	sa, aok := a.(string)
	sb, bok := b.(string)
	if aok && bok {
		return strings.Compare(sa, sb)
	}
	return 0
}
