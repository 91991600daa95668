package memoryapi

// envelope is the response wrapper every memory-service endpoint returns.
// Success=false with a 2xx status is a logical failure reported by the
// service; the transport layer turns it into an *APIError.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ─── requests ────────────────────────────────────────────────────────────────

type ingestRequest struct {
	Content string `json:"content"`
	Name    string `json:"name"`
}

type queryRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
	Since string `json:"since,omitempty"`
	Until string `json:"until,omitempty"`
}

type identityUpdateRequest struct {
	AgentName       *string `json:"agent_name,omitempty"`
	IdentitySummary *string `json:"identity_summary,omitempty"`
}

type endSessionRequest struct {
	Summary   string         `json:"summary"`
	WorkingOn string         `json:"working_on,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
	Timestamp string         `json:"timestamp"`
	SessionID string         `json:"session_id,omitempty"`
}

type relationshipsRequest struct {
	Entity string `json:"entity"`
	Type   string `json:"type,omitempty"`
	Limit  int    `json:"limit"`
}

// ─── responses ───────────────────────────────────────────────────────────────

// IngestResult identifies the stored artifact and how many chunks it produced.
type IngestResult struct {
	envelope
	ArtifactID string `json:"artifact_id"`
	ChunkCount int    `json:"chunk_count"`
}

// QueryMatch is one scored chunk returned by a semantic query.
type QueryMatch struct {
	Text   string  `json:"text"`
	Source string  `json:"source"`
	Score  float64 `json:"score"`
	Date   string  `json:"date,omitempty"`
}

// Insights are the narrative groups the service may attach to a query
// response. The groups are opaque string lists; the adapter renders them
// as-is without ranking or truncation.
type Insights struct {
	Decisions    []string `json:"decisions,omitempty"`
	Causality    []string `json:"causality,omitempty"`
	Patterns     []string `json:"patterns,omitempty"`
	Implications []string `json:"implications,omitempty"`
	Gaps         []string `json:"gaps,omitempty"`
}

// Empty reports whether no insight group carries any entry.
func (i *Insights) Empty() bool {
	if i == nil {
		return true
	}
	return len(i.Decisions) == 0 && len(i.Causality) == 0 && len(i.Patterns) == 0 &&
		len(i.Implications) == 0 && len(i.Gaps) == 0
}

// QueryResult is the ranked match list for a semantic query.
type QueryResult struct {
	envelope
	Results  []QueryMatch `json:"results"`
	Insights *Insights    `json:"insights,omitempty"`
}

// Artifact is one stored unit of ingested content.
type Artifact struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	ChunkCount int    `json:"chunk_count"`
	CreatedAt  string `json:"created_at"`
}

// ListResult is the ordered artifact listing.
type ListResult struct {
	envelope
	Artifacts []Artifact `json:"artifacts"`
}

// DeleteResult reports how many chunks a deletion removed.
type DeleteResult struct {
	envelope
	ChunksDeleted int    `json:"chunks_deleted"`
	Message       string `json:"message,omitempty"`
}

// HealthResult is the service health flag.
type HealthResult struct {
	envelope
	Healthy bool `json:"healthy"`
}

// UsageResult reports storage consumption against the account limit.
type UsageResult struct {
	envelope
	UsedBytes  int64 `json:"used_bytes"`
	LimitBytes int64 `json:"limit_bytes"`
}

// Handoff is a previously recorded session handoff.
type Handoff struct {
	Summary   string `json:"summary"`
	WorkingOn string `json:"working_on,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// MemoryStats summarizes what the service holds for this agent.
type MemoryStats struct {
	Artifacts int   `json:"artifacts"`
	Chunks    int   `json:"chunks"`
	UsedBytes int64 `json:"used_bytes"`
}

// ActivityRecord is one entry in the identity's recent-activity feed.
type ActivityRecord struct {
	Source    string `json:"source"`
	Action    string `json:"action,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// IdentityResult is the agent identity snapshot.
type IdentityResult struct {
	envelope
	AgentName       string           `json:"agent_name"`
	IdentitySummary string           `json:"identity_summary"`
	SessionCount    int              `json:"session_count"`
	LastHandoff     *Handoff         `json:"last_handoff,omitempty"`
	MemoryStats     *MemoryStats     `json:"memory_stats,omitempty"`
	RecentActivity  []ActivityRecord `json:"recent_activity,omitempty"`
}

// MessageResult is a bare confirmation message.
type MessageResult struct {
	envelope
	Message string `json:"message"`
}

// RelatedEntity is one co-occurring entity with its strength count.
type RelatedEntity struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Strength int    `json:"strength"`
}

// EntityRef names the entity a relationship lookup resolved to.
type EntityRef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RelationshipsResult is the ranked co-occurrence list for an entity.
type RelationshipsResult struct {
	envelope
	Entity  EntityRef       `json:"entity"`
	Related []RelatedEntity `json:"related"`
}
