package vector

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/nyaysetu/nyaysetu/internal/models"
)

// entry is one stored passage with its vector.
type entry struct {
	id     string
	vector []float32
	doc    string
	meta   models.PassageMeta
}

// FlatIndex is a flat in-memory index with brute-force cosine-distance search
// and binary on-disk persistence. The legal corpus is small enough (tens of
// thousands of passages) that exact search beats an approximate structure.
type FlatIndex struct {
	dimensions int
	entries    []entry
	byID       map[string]int
	mu         sync.RWMutex
}

// NewFlatIndex creates an empty index for vectors of the given dimension.
func NewFlatIndex(dimensions int) (*FlatIndex, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("dimensions must be positive")
	}
	return &FlatIndex{
		dimensions: dimensions,
		byID:       make(map[string]int),
	}, nil
}

// Upsert adds or overwrites entries. All slices must have equal length.
func (f *FlatIndex) Upsert(ctx context.Context, ids []string, vectors [][]float32, documents []string, metadatas []models.PassageMeta) error {
	if len(ids) != len(vectors) || len(ids) != len(documents) || len(ids) != len(metadatas) {
		return fmt.Errorf("ids, vectors, documents, metadatas length mismatch: %d/%d/%d/%d",
			len(ids), len(vectors), len(documents), len(metadatas))
	}
	for i := range vectors {
		if len(vectors[i]) != f.dimensions {
			return fmt.Errorf("vector dimension mismatch: got %d, expected %d", len(vectors[i]), f.dimensions)
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, id := range ids {
		vec := make([]float32, f.dimensions)
		copy(vec, vectors[i])
		e := entry{id: id, vector: vec, doc: documents[i], meta: metadatas[i]}
		if pos, ok := f.byID[id]; ok {
			f.entries[pos] = e
			continue
		}
		f.byID[id] = len(f.entries)
		f.entries = append(f.entries, e)
	}
	return nil
}

// Query returns up to k results ordered by ascending cosine distance.
// Relevance is 1-distance clamped to [0,1] so downstream confidence math
// stays in range even for unnormalized vectors.
func (f *FlatIndex) Query(ctx context.Context, query []float32, k int) ([]*models.SearchResult, error) {
	if len(query) != f.dimensions {
		return nil, fmt.Errorf("query dimension mismatch: got %d, expected %d", len(query), f.dimensions)
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if k <= 0 || len(f.entries) == 0 {
		return []*models.SearchResult{}, nil
	}
	type scored struct {
		pos      int
		distance float64
	}
	scores := make([]scored, len(f.entries))
	for i, e := range f.entries {
		scores[i] = scored{pos: i, distance: cosineDistance(query, e.vector)}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].distance < scores[j].distance })
	if k > len(scores) {
		k = len(scores)
	}
	results := make([]*models.SearchResult, k)
	for i := 0; i < k; i++ {
		e := f.entries[scores[i].pos]
		results[i] = &models.SearchResult{
			Content:   e.doc,
			Meta:      e.meta,
			Distance:  scores[i].distance,
			Relevance: clamp01(1 - scores[i].distance),
		}
	}
	return results, nil
}

// Size returns the number of stored passages.
func (f *FlatIndex) Size() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

// Close is a no-op for FlatIndex.
func (f *FlatIndex) Close() error {
	return nil
}

// Save persists the index to path. Directory is created if needed. Format:
// dimensions (4), n (4), then per entry: idLen (4), id, vector
// (dimensions*4), docLen (4), doc, metaLen (4), metadata JSON.
func (f *FlatIndex) Save(path string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	defer file.Close()
	if err := binary.Write(file, binary.LittleEndian, uint32(f.dimensions)); err != nil {
		return fmt.Errorf("write dimensions: %w", err)
	}
	if err := binary.Write(file, binary.LittleEndian, uint32(len(f.entries))); err != nil {
		return fmt.Errorf("write count: %w", err)
	}
	for _, e := range f.entries {
		if err := writeBytes(file, []byte(e.id)); err != nil {
			return fmt.Errorf("write id: %w", err)
		}
		if _, err := file.Write(float32SliceToBytes(e.vector)); err != nil {
			return fmt.Errorf("write vector: %w", err)
		}
		if err := writeBytes(file, []byte(e.doc)); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		metaJSON, err := json.Marshal(e.meta)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		if err := writeBytes(file, metaJSON); err != nil {
			return fmt.Errorf("write metadata: %w", err)
		}
	}
	return nil
}

// Load reads the index from path and replaces the in-memory contents.
// A missing file is not an error: the collection does not exist yet and the
// index stays empty.
func (f *FlatIndex) Load(path string) error {
	if path == "" {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open index file: %w", err)
	}
	defer file.Close()
	var dim, n uint32
	if err := binary.Read(file, binary.LittleEndian, &dim); err != nil {
		return fmt.Errorf("read dimensions: %w", err)
	}
	if int(dim) != f.dimensions {
		return fmt.Errorf("dimension mismatch: file has %d, index expects %d", dim, f.dimensions)
	}
	if err := binary.Read(file, binary.LittleEndian, &n); err != nil {
		return fmt.Errorf("read count: %w", err)
	}
	entries := make([]entry, 0, n)
	byID := make(map[string]int, n)
	vecBuf := make([]byte, f.dimensions*4)
	for i := uint32(0); i < n; i++ {
		id, err := readBytes(file)
		if err != nil {
			return fmt.Errorf("read id: %w", err)
		}
		if _, err := io.ReadFull(file, vecBuf); err != nil {
			return fmt.Errorf("read vector: %w", err)
		}
		doc, err := readBytes(file)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		metaJSON, err := readBytes(file)
		if err != nil {
			return fmt.Errorf("read metadata: %w", err)
		}
		var meta models.PassageMeta
		if err := json.Unmarshal(metaJSON, &meta); err != nil {
			return fmt.Errorf("unmarshal metadata: %w", err)
		}
		byID[string(id)] = len(entries)
		entries = append(entries, entry{
			id:     string(id),
			vector: bytesToFloat32Slice(vecBuf),
			doc:    string(doc),
			meta:   meta,
		})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = entries
	f.byID = byID
	return nil
}

// cosineDistance returns 1 minus the cosine similarity of a and b.
// For unit vectors the result is in [0,2]; identical directions give 0.
func cosineDistance(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func writeBytes(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readBytes(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func float32SliceToBytes(s []float32) []byte {
	const size = 4
	out := make([]byte, len(s)*size)
	for i, v := range s {
		binary.LittleEndian.PutUint32(out[i*size:(i+1)*size], math.Float32bits(v))
	}
	return out
}

func bytesToFloat32Slice(b []byte) []float32 {
	const size = 4
	out := make([]float32, len(b)/size)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*size : (i+1)*size]))
	}
	return out
}
