package perf

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is the default capacity of the ring buffer.
const DefaultRingSize = 10000

// EntryKind distinguishes what was timed.
type EntryKind uint8

const (
	// KindRequest is a page request served by the panel.
	KindRequest EntryKind = iota
	// KindQuery is a local audit database call.
	KindQuery
	// KindUpstream is a call from the panel to the REST backend.
	KindUpstream
)

// Entry is a single timing record stored in the ring buffer.
type Entry struct {
	Kind       EntryKind
	Path       string // "GET /blog", "POST /api/sponsors" or "ExecContext"
	StatusCode int    // 0 for queries and upstream transport failures
	DurationMs float64
	Timestamp  time.Time
}

// Collector is a fixed-size ring buffer for timing entries.
// When full, oldest entries are overwritten. Aggregation happens on read.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	pos     int
	count   int64
}

// NewCollector creates a collector with the given ring buffer capacity.
// PRE: size > 0
// POST: Returns a ready-to-use collector with pre-allocated storage
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Record appends an entry to the ring buffer.
// PRE: e is a valid Entry
// POST: Entry stored; if buffer full, oldest entry overwritten
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.entries[c.pos] = e
	c.pos = (c.pos + 1) % c.size
	c.mu.Unlock()
	atomic.AddInt64(&c.count, 1)
}

// TotalRecorded returns the total number of entries ever recorded.
func (c *Collector) TotalRecorded() int64 {
	return atomic.LoadInt64(&c.count)
}

// Snapshot holds aggregated performance data computed on read.
type Snapshot struct {
	TotalRecorded   int64
	RequestP50Ms    float64
	RequestP95Ms    float64
	RequestP99Ms    float64
	UpstreamP95Ms   float64
	UpstreamErrors  int
	SlowestPaths    []PathStat
	SlowestQueries  []PathStat
	SlowestUpstream []PathStat
}

// PathStat aggregates timing for a single path.
type PathStat struct {
	Path    string
	AvgMs   float64
	MaxMs   float64
	Count   int
	Errors  int
	TotalMs float64
}

type bucket struct {
	durations []float64
	stats     map[string]*PathStat
}

func (b *bucket) add(e Entry) {
	if b.stats == nil {
		b.stats = make(map[string]*PathStat)
	}
	b.durations = append(b.durations, e.DurationMs)
	s, ok := b.stats[e.Path]
	if !ok {
		s = &PathStat{Path: e.Path}
		b.stats[e.Path] = s
	}
	s.Count++
	s.TotalMs += e.DurationMs
	if e.DurationMs > s.MaxMs {
		s.MaxMs = e.DurationMs
	}
	if e.Kind == KindUpstream && (e.StatusCode == 0 || e.StatusCode >= 400) {
		s.Errors++
	}
}

// Snapshot computes aggregated stats from entries recorded at or after since.
// It sorts, so it is meant for the dashboard page only.
// POST: Returns a Snapshot with percentiles and top-N lists per kind
func (c *Collector) Snapshot(since time.Time, topN int) Snapshot {
	c.mu.Lock()
	buf := make([]Entry, c.size)
	copy(buf, c.entries)
	c.mu.Unlock()

	buckets := map[EntryKind]*bucket{
		KindRequest:  {},
		KindQuery:    {},
		KindUpstream: {},
	}
	for _, e := range buf {
		if e.Timestamp.IsZero() || e.Timestamp.Before(since) {
			continue
		}
		if b, ok := buckets[e.Kind]; ok {
			b.add(e)
		}
	}

	snap := Snapshot{
		TotalRecorded:   c.TotalRecorded(),
		SlowestPaths:    topByAvg(buckets[KindRequest].stats, topN),
		SlowestQueries:  topByAvg(buckets[KindQuery].stats, topN),
		SlowestUpstream: topByAvg(buckets[KindUpstream].stats, topN),
	}
	for _, s := range buckets[KindUpstream].stats {
		snap.UpstreamErrors += s.Errors
	}

	if d := buckets[KindRequest].durations; len(d) > 0 {
		sort.Float64s(d)
		snap.RequestP50Ms = percentile(d, 50)
		snap.RequestP95Ms = percentile(d, 95)
		snap.RequestP99Ms = percentile(d, 99)
	}
	if d := buckets[KindUpstream].durations; len(d) > 0 {
		sort.Float64s(d)
		snap.UpstreamP95Ms = percentile(d, 95)
	}
	return snap
}

// percentile returns the p-th percentile from a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper || upper >= len(sorted) {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// topByAvg returns the top N paths sorted by average duration (descending).
func topByAvg(stats map[string]*PathStat, n int) []PathStat {
	list := make([]PathStat, 0, len(stats))
	for _, s := range stats {
		s.AvgMs = s.TotalMs / float64(s.Count)
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].AvgMs == list[j].AvgMs {
			return list[i].Path < list[j].Path
		}
		return list[i].AvgMs > list[j].AvgMs
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}
