// Package vectorstore persists embedded chunks in a Qdrant collection and
// retrieves them by vector similarity.
package vectorstore

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/tsawler/segmenta/model"
)

// contentKey is the payload field holding the chunk text. Metadata keys
// are stored alongside it, so "content" is reserved.
const contentKey = "content"

// idNamespace seeds deterministic point IDs: the same chunk content always
// maps to the same point, making upserts idempotent.
var idNamespace = uuid.MustParse("8c2bb92e-0c04-44a3-89a4-f23c6ba0e291")

// Store is a Qdrant-backed vector store for chunk documents.
type Store struct {
	client     *qdrant.Client
	collection string
	dimension  int
}

// Result is a search hit: a reconstructed document and its similarity
// score.
type Result struct {
	Document model.Document
	Score    float32
}

// New connects to a Qdrant instance (gRPC port) and returns a store over
// the named collection.
func New(host string, port int, collection string, dimension int) (*Store, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}
	return &Store{
		client:     client,
		collection: collection,
		dimension:  dimension,
	}, nil
}

// EnsureCollection creates the collection if it does not exist, configured
// for cosine similarity at the store's dimension.
func (s *Store) EnsureCollection(ctx context.Context) error {
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("checking collection %s: %w", s.collection, err)
	}
	if exists {
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(s.dimension),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("creating collection %s: %w", s.collection, err)
	}
	return nil
}

// Upsert writes documents and their embedding vectors to the collection.
// Documents and vectors are paired by position. Re-upserting the same
// content overwrites the existing point.
func (s *Store) Upsert(ctx context.Context, docs []model.Document, vectors [][]float32) error {
	if len(docs) != len(vectors) {
		return fmt.Errorf("got %d vectors for %d documents", len(vectors), len(docs))
	}
	if len(docs) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, len(docs))
	for i, doc := range docs {
		payload := map[string]any{contentKey: doc.PageContent}
		for k, v := range doc.Metadata {
			if k == contentKey {
				continue
			}
			payload[k] = v
		}
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID(doc.PageContent)),
			Vectors: qdrant.NewVectorsDense(vectors[i]),
			Payload: qdrant.NewValueMap(payload),
		}
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upserting %d points: %w", len(points), err)
	}
	return nil
}

// Search returns the limit nearest documents to the query vector, best
// first.
func (s *Store) Search(ctx context.Context, vector []float32, limit uint64) ([]Result, error) {
	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("querying collection %s: %w", s.collection, err)
	}

	results := make([]Result, 0, len(points))
	for _, point := range points {
		results = append(results, Result{
			Document: documentFromPayload(point.Payload),
			Score:    point.Score,
		})
	}
	return results, nil
}

// pointID derives a deterministic UUID from chunk content.
func pointID(content string) string {
	hash := sha256.Sum256([]byte(content))
	return uuid.NewSHA1(idNamespace, hash[:16]).String()
}

// documentFromPayload rebuilds a document from a point payload.
func documentFromPayload(payload map[string]*qdrant.Value) model.Document {
	doc := model.Document{Metadata: make(map[string]any)}
	for k, v := range payload {
		if k == contentKey {
			doc.PageContent = v.GetStringValue()
			continue
		}
		doc.Metadata[k] = valueToAny(v)
	}
	return doc
}

// valueToAny converts a qdrant payload value back into a plain Go value.
func valueToAny(v *qdrant.Value) any {
	switch kind := v.GetKind().(type) {
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_IntegerValue:
		return int(kind.IntegerValue)
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	case *qdrant.Value_ListValue:
		values := kind.ListValue.GetValues()
		list := make([]any, len(values))
		for i, item := range values {
			list[i] = valueToAny(item)
		}
		return list
	case *qdrant.Value_StructValue:
		fields := kind.StructValue.GetFields()
		nested := make(map[string]any, len(fields))
		for name, item := range fields {
			nested[name] = valueToAny(item)
		}
		return nested
	default:
		return nil
	}
}
