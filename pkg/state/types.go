package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	intake "github.com/goliatone/go-intake"
	"github.com/goliatone/go-intake/pkg/activity"
	"github.com/google/uuid"
)

var ErrETagMismatch = errors.New("state: etag mismatch")

// Ref identifies one persisted snapshot for one wizard project.
type Ref struct {
	ProjectID string
}

// Identifier returns the deterministic storage key for the project snapshot.
func (r Ref) Identifier() (string, error) {
	if r.ProjectID == "" {
		return "", fmt.Errorf("state: project id is required")
	}
	return fmt.Sprintf("project/%s", r.ProjectID), nil
}

// Meta is storage-owned metadata used for trace/audit and concurrency control.
type Meta struct {
	SnapshotID string            `json:"snapshot_id,omitempty"`
	ETag       string            `json:"etag,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Store loads/saves one snapshot for a single project reference.
type Store interface {
	Load(ctx context.Context, ref Ref) (snapshot intake.Snapshot, meta Meta, ok bool, err error)
	Save(ctx context.Context, ref Ref, snapshot intake.Snapshot, meta Meta) (Meta, error)
}

// Mutator applies an in-place change to a loaded snapshot.
type Mutator func(*intake.Snapshot) error

// Resolver orchestrates load-mutate-save cycles over a Store. When an Emitter
// is configured, RecordAnswer publishes audit events for applied answers.
type Resolver struct {
	Store   Store
	Emitter *activity.Emitter
}

// Resolve loads the project snapshot and wraps it into an intake.Engine
// configured with opts.
func (r Resolver) Resolve(ctx context.Context, projectID string, opts ...intake.Option) (*intake.Engine, Meta, error) {
	if r.Store == nil {
		return nil, Meta{}, fmt.Errorf("state: store is required")
	}
	snapshot, meta, ok, err := r.Store.Load(ctx, Ref{ProjectID: projectID})
	if err != nil {
		return nil, Meta{}, fmt.Errorf("state: load project %q: %w", projectID, err)
	}
	if !ok {
		return nil, Meta{}, fmt.Errorf("state: project %q not found", projectID)
	}
	return intake.New(snapshot, opts...), meta, nil
}

// Mutate loads one snapshot, applies fn, then saves. The caller-supplied meta
// is checked against the stored ETag before fn runs; fresh SnapshotID and ETag
// values are stamped when the caller leaves them empty.
func (r Resolver) Mutate(ctx context.Context, ref Ref, meta Meta, fn Mutator) (intake.Snapshot, Meta, error) {
	if r.Store == nil {
		return intake.Snapshot{}, Meta{}, fmt.Errorf("state: store is required")
	}
	if ref.ProjectID == "" {
		return intake.Snapshot{}, Meta{}, fmt.Errorf("state: project id is required")
	}
	if fn == nil {
		return intake.Snapshot{}, Meta{}, fmt.Errorf("state: mutator is required")
	}

	snapshot, loadedMeta, ok, err := r.Store.Load(ctx, ref)
	if err != nil {
		return intake.Snapshot{}, Meta{}, fmt.Errorf("state: load project %q: %w", ref.ProjectID, err)
	}
	if !ok {
		snapshot = intake.NewSnapshot()
		loadedMeta = Meta{}
	}

	if meta.ETag != "" && loadedMeta.ETag != "" && meta.ETag != loadedMeta.ETag {
		return intake.Snapshot{}, loadedMeta, fmt.Errorf("%w: expected %q, got %q", ErrETagMismatch, meta.ETag, loadedMeta.ETag)
	}

	if err := fn(&snapshot); err != nil {
		return intake.Snapshot{}, loadedMeta, err
	}

	saveMeta := mergeMeta(loadedMeta, meta)
	if saveMeta.SnapshotID == "" {
		saveMeta.SnapshotID = uuid.NewString()
	}
	saveMeta.ETag = uuid.NewString()
	saveMeta.UpdatedAt = time.Now()

	savedMeta, err := r.Store.Save(ctx, ref, snapshot, saveMeta)
	if err != nil {
		return intake.Snapshot{}, loadedMeta, fmt.Errorf("state: save project %q: %w", ref.ProjectID, err)
	}
	return snapshot, savedMeta, nil
}

// RecordAnswer applies a user answer for question through Mutate and, when an
// emitter is configured, publishes an answer-recorded audit event carrying the
// old and new values.
func (r Resolver) RecordAnswer(ctx context.Context, ref Ref, meta Meta, question intake.Question, value any) (intake.Snapshot, Meta, error) {
	var oldValue any
	snapshot, savedMeta, err := r.Mutate(ctx, ref, meta, func(s *intake.Snapshot) error {
		oldValue, _ = question.Value(*s)
		return intake.Answer(s, question, value)
	})
	if err != nil {
		return intake.Snapshot{}, savedMeta, err
	}

	if r.Emitter.Enabled() {
		event := activity.BuildAnswerRecordedEvent(activity.FieldEventInput{
			ProjectID: ref.ProjectID,
			Field:     intake.CanonicalField(question.Field),
			Source:    intake.SourceUser.String(),
			OldValue:  oldValue,
			NewValue:  value,
		})
		if emitErr := r.Emitter.Emit(ctx, event); emitErr != nil {
			return snapshot, savedMeta, fmt.Errorf("state: emit answer event: %w", emitErr)
		}
	}
	return snapshot, savedMeta, nil
}

func mergeMeta(base, override Meta) Meta {
	out := base
	if override.SnapshotID != "" {
		out.SnapshotID = override.SnapshotID
	}
	if override.ETag != "" {
		out.ETag = override.ETag
	}
	if !override.UpdatedAt.IsZero() {
		out.UpdatedAt = override.UpdatedAt
	}
	if override.Extra != nil {
		out.Extra = override.Extra
	}
	return out
}
