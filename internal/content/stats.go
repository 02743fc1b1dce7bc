package content

// Stats counts how generated content was sourced during one run.
type Stats struct {
	AICalls       int
	CacheHits     int
	FallbackCalls int
}

// TotalCalls returns the total number of Generate calls.
func (s Stats) TotalCalls() int {
	return s.AICalls + s.CacheHits + s.FallbackCalls
}

// CacheEfficiency returns the percentage of calls served from cache.
func (s Stats) CacheEfficiency() float64 {
	total := s.TotalCalls()
	if total == 0 {
		return 0
	}
	return float64(s.CacheHits) / float64(total) * 100
}

// AIUsage returns the percentage of calls served by a provider.
func (s Stats) AIUsage() float64 {
	total := s.TotalCalls()
	if total == 0 {
		return 0
	}
	return float64(s.AICalls) / float64(total) * 100
}
