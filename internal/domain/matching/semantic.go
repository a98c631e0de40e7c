package matching

import (
	"context"
	"math"
	"sort"
)

// Embedder turns a piece of text into a fixed-dimension vector. The semantic
// strategy consumes this capability; it does not own the model.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// DefaultThreshold is the pairwise cosine similarity above which two
// interests count as shared.
const DefaultThreshold = 0.6

// Semantic considers two interests shared when the cosine similarity of
// their embeddings reaches the threshold. The shared set is drawn from the
// other user's vocabulary. The score is the cosine similarity between the
// mean embeddings of the two full interest lists, scaled to 0-100 and
// rounded to two decimals.
type Semantic struct {
	embedder  Embedder
	threshold float64
}

func NewSemantic(embedder Embedder, threshold float64) *Semantic {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Semantic{embedder: embedder, threshold: threshold}
}

func (s *Semantic) Overlap(ctx context.Context, targetInterests, otherInterests []string) ([]string, float64, error) {
	// Each interest string is embedded once per run.
	memo := make(map[string][]float32, len(targetInterests)+len(otherInterests))
	embed := func(text string) ([]float32, error) {
		if v, ok := memo[text]; ok {
			return v, nil
		}
		v, err := s.embedder.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		memo[text] = v
		return v, nil
	}

	targetVecs := make([][]float32, len(targetInterests))
	for i, it := range targetInterests {
		v, err := embed(it)
		if err != nil {
			return nil, 0, err
		}
		targetVecs[i] = v
	}

	otherVecs := make([][]float32, len(otherInterests))
	for i, it := range otherInterests {
		v, err := embed(it)
		if err != nil {
			return nil, 0, err
		}
		otherVecs[i] = v
	}

	sharedSet := make(map[string]struct{})
	for _, tv := range targetVecs {
		for j, ov := range otherVecs {
			if cosine(tv, ov) >= s.threshold {
				sharedSet[otherInterests[j]] = struct{}{}
			}
		}
	}
	if len(sharedSet) == 0 {
		return nil, 0, nil
	}

	shared := make([]string, 0, len(sharedSet))
	for it := range sharedSet {
		shared = append(shared, it)
	}
	sort.Strings(shared)

	sim := cosine(meanVector(targetVecs), meanVector(otherVecs))
	score := math.Round(sim*100*100) / 100

	return shared, score, nil
}

// cosine returns the cosine similarity of two vectors, or 0 when the
// dimensions differ or either vector has zero norm.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// meanVector computes the element-wise average of the given vectors.
func meanVector(vecs [][]float32) []float32 {
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return nil
	}

	n := len(vecs[0])
	out := make([]float32, n)
	for _, v := range vecs {
		if len(v) != n {
			return nil
		}
		for i := 0; i < n; i++ {
			out[i] += v[i]
		}
	}

	count := float32(len(vecs))
	for i := 0; i < n; i++ {
		out[i] /= count
	}
	return out
}
