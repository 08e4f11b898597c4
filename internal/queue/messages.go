package queue

// EnrichJobMsg asks the worker to recompute all derived metrics for a
// stored graph snapshot.
type EnrichJobMsg struct {
	GraphID string `json:"graph_id"`
}

// ExpandJobMsg asks the worker to run an AI expansion query against a
// stored graph snapshot and persist the accepted proposals.
type ExpandJobMsg struct {
	GraphID string `json:"graph_id"`
	Query   string `json:"query"`
}
