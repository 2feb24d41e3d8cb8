package graph

import (
	"fmt"
	"math"
	"sort"

	"github.com/Igaki12/news-network-api/domain/article"
)

// DefaultEntityCap bounds the number of entities that become graph nodes for
// one day. Smaller-viewport clients request a lower cap.
const DefaultEntityCap = 50

// Config tunes graph construction
type Config struct {
	EntityCap int
}

// DefaultConfig returns the standard build configuration
func DefaultConfig() Config {
	return Config{EntityCap: DefaultEntityCap}
}

// Color is the node fill/border pair consumed by the renderer
type Color struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

// Node is one render-ready graph node
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Title string  `json:"title"`
	Color Color   `json:"color"`
}

// Edge is one weighted co-occurrence edge between two top entities. From/To
// hold the canonical unordered pair (From sorts before To).
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value int    `json:"value"`
	Title string `json:"title"`
}

// Payload is the graph structure handed to the force-directed renderer
type Payload struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeMeta is the per-entity detail record backing the side panel and quiz
// sourcing. Articles holds the entity's substantial articles sorted by
// descending content length.
type NodeMeta struct {
	ID       string            `json:"id"`
	Count    int               `json:"count"`
	Subject  *string           `json:"subject"`
	Articles []article.Article `json:"articles"`
}

// Result bundles the render payload with the entity metadata map
type Result struct {
	Payload Payload             `json:"graph"`
	Meta    map[string]NodeMeta `json:"nodeMeta"`
}

// entityStats accumulates one entity's per-day aggregates during the scan
type entityStats struct {
	count         int
	articles      []article.Article
	subjectCounts map[string]int
	subjectOrder  []string
}

// Build aggregates one day's articles into a capped top-entity graph. Entities
// are ranked by the number of distinct articles mentioning them; equal counts
// keep first-seen scan order. Co-occurrence edges are emitted only when two
// top entities share more than one article.
//
// Zero input articles yield an empty payload and metadata map, which is a
// valid nothing-to-display state rather than an error.
func Build(articles []article.Article, cfg Config) Result {
	entityCap := cfg.EntityCap
	if entityCap <= 0 {
		entityCap = DefaultEntityCap
	}

	stats := make(map[string]*entityStats)
	order := make([]string, 0)

	for _, a := range articles {
		for _, entity := range uniqueEntities(a) {
			st := stats[entity]
			if st == nil {
				st = &entityStats{subjectCounts: make(map[string]int)}
				stats[entity] = st
				order = append(order, entity)
			}
			st.count++
			st.articles = append(st.articles, a)
			for _, sc := range a.SubjectCodes {
				if sc.SubjectMatter == "" {
					continue
				}
				if _, seen := st.subjectCounts[sc.SubjectMatter]; !seen {
					st.subjectOrder = append(st.subjectOrder, sc.SubjectMatter)
				}
				st.subjectCounts[sc.SubjectMatter]++
			}
		}
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return stats[ranked[i]].count > stats[ranked[j]].count
	})
	if len(ranked) > entityCap {
		ranked = ranked[:entityCap]
	}

	result := Result{
		Payload: Payload{
			Nodes: make([]Node, 0, len(ranked)),
			Edges: []Edge{},
		},
		Meta: make(map[string]NodeMeta, len(ranked)),
	}

	topSet := make(map[string]struct{}, len(ranked))
	for _, entity := range ranked {
		topSet[entity] = struct{}{}

		st := stats[entity]
		subject := dominantSubject(st)
		fill := fillForSubject(subject)

		result.Payload.Nodes = append(result.Payload.Nodes, Node{
			ID:    entity,
			Label: fmt.Sprintf("<b>%s</b>", entity),
			Value: visualWeight(st.count),
			Title: fmt.Sprintf("出現回数: %d", st.count),
			Color: Color{Background: fill, Border: borderFor(fill)},
		})

		result.Meta[entity] = NodeMeta{
			ID:       entity,
			Count:    st.count,
			Subject:  subject,
			Articles: qualifyingArticles(st.articles),
		}
	}

	result.Payload.Edges = buildEdges(articles, topSet)

	return result
}

// visualWeight converts an occurrence count into node size. Log scaling keeps
// high-frequency entities from dwarfing the rest; counts at or below one get
// the floor size.
func visualWeight(count int) float64 {
	if count <= 1 {
		return 2
	}
	return math.Log(float64(count))*5 + 2
}

// dominantSubject returns the subject label with the highest accumulated
// count; the first label encountered in scan order wins ties. Nil when the
// entity's articles carried no subject codes.
func dominantSubject(st *entityStats) *string {
	var dominant *string
	max := 0
	for _, subject := range st.subjectOrder {
		if st.subjectCounts[subject] > max {
			max = st.subjectCounts[subject]
			s := subject
			dominant = &s
		}
	}
	return dominant
}

// qualifyingArticles filters to substantial articles and sorts them by
// descending content length as a richness proxy.
func qualifyingArticles(articles []article.Article) []article.Article {
	qualified := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if a.Substantial() {
			qualified = append(qualified, a)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return len(qualified[i].Content) > len(qualified[j].Content)
	})
	return qualified
}

// pairKey is the canonical unordered entity pair
type pairKey struct {
	a, b string
}

func makePairKey(x, y string) pairKey {
	if x < y {
		return pairKey{a: x, b: y}
	}
	return pairKey{a: y, b: x}
}

// buildEdges counts, per unordered top-entity pair, the distinct articles in
// which both appear. Pairs co-occurring in only one article are dropped as
// noise.
func buildEdges(articles []article.Article, topSet map[string]struct{}) []Edge {
	counts := make(map[pairKey]int)
	pairOrder := make([]pairKey, 0)

	for _, a := range articles {
		entities := make([]string, 0)
		for _, entity := range uniqueEntities(a) {
			if _, ok := topSet[entity]; ok {
				entities = append(entities, entity)
			}
		}
		for i := 0; i < len(entities); i++ {
			for j := i + 1; j < len(entities); j++ {
				key := makePairKey(entities[i], entities[j])
				if _, seen := counts[key]; !seen {
					pairOrder = append(pairOrder, key)
				}
				counts[key]++
			}
		}
	}

	edges := make([]Edge, 0, len(pairOrder))
	for _, key := range pairOrder {
		count := counts[key]
		if count <= 1 {
			continue
		}
		edges = append(edges, Edge{
			From:  key.a,
			To:    key.b,
			Value: count,
			Title: fmt.Sprintf("共起回数: %d", count),
		})
	}
	return edges
}

// uniqueEntities deduplicates an article's entity list, preserving order.
// Parsed articles arrive deduplicated already; this guards programmatically
// constructed input.
func uniqueEntities(a article.Article) []string {
	seen := make(map[string]struct{}, len(a.Entities))
	unique := make([]string, 0, len(a.Entities))
	for _, entity := range a.Entities {
		if entity == "" {
			continue
		}
		if _, ok := seen[entity]; ok {
			continue
		}
		seen[entity] = struct{}{}
		unique = append(unique, entity)
	}
	return unique
}
