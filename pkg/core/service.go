package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/daybook/pkg/marker"
	"github.com/aretw0/daybook/pkg/notes"
	"github.com/aretw0/daybook/pkg/settings"
	"github.com/aretw0/daybook/pkg/taxonomy"
)

// snapshotCap bounds the taxonomy slice sent to the classifier.
const snapshotCap = 20

// Service orchestrates the document model, the marker merge algorithms,
// the taxonomy and the external classifier.
//
// Every public operation is an independent read-parse-mutate-build-write
// transaction against the notes file, followed by a fire-and-forget
// notification. Nothing is cached between calls and nothing serializes
// concurrent operations; the last writer's full document wins.
type Service struct {
	files      FileStore
	settings   SettingsStore
	classifier Classifier
	broker     *Broker
	logger     *slog.Logger
}

// NewService wires the orchestrator. classifier may be nil when no
// credential is configured; classification then reports no_credential.
func NewService(files FileStore, store SettingsStore, classifier Classifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		files:      files,
		settings:   store,
		classifier: classifier,
		broker:     NewBroker(logger),
		logger:     logger,
	}
}

// Subscribe registers a notification subscriber; the returned function
// cancels the subscription.
func (s *Service) Subscribe(fn Subscriber) func() {
	return s.broker.Subscribe(fn)
}

func (s *Service) publish(t EventType, day string) {
	s.broker.Publish(Event{Type: t, Day: day, Timestamp: time.Now().Unix()})
}

// loadDocument reads and parses the configured notes file. A missing file
// parses as an empty document so first writes can create it.
func (s *Service) loadDocument(ctx context.Context, rec settings.Record) (*notes.Document, error) {
	if rec.NotesPath == "" {
		return nil, ErrNoDocument
	}

	text, err := s.files.Read(ctx, rec.NotesPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notes.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}
	return notes.Parse(text), nil
}

func (s *Service) persist(ctx context.Context, rec settings.Record, doc *notes.Document) error {
	if err := s.files.Write(ctx, rec.NotesPath, doc.Build()); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}
	return nil
}

// Document loads and parses the configured notes file.
func (s *Service) Document(ctx context.Context) (*notes.Document, error) {
	rec, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.loadDocument(ctx, rec)
}

// Day returns one day's content and whether the day exists.
func (s *Service) Day(ctx context.Context, day string) (string, bool, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return "", false, err
	}
	content, ok := doc.Day(day)
	return content, ok, nil
}

// NotesPath returns the configured notes file path ("" when unset).
func (s *Service) NotesPath(ctx context.Context) (string, error) {
	rec, err := s.settings.Load(ctx)
	if err != nil {
		return "", err
	}
	return rec.NotesPath, nil
}

// SetNotesPath updates the notes file path setting and notifies.
func (s *Service) SetNotesPath(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("notes file path cannot be empty")
	}

	rec, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	rec.NotesPath = path
	if err := s.settings.Save(ctx, rec); err != nil {
		return err
	}

	s.publish(EventPathChanged, "")
	return nil
}

// SaveDay replaces a day's content with a plain user edit.
//
// Workflow:
//  1. Read and parse the current document.
//  2. Merge: markers from the previous raw content are reattached onto
//     the incoming text by line index, so a text edit keeps prior
//     classifications as long as bullet count and order are unchanged.
//  3. Blank content removes the day entirely.
//  4. Build, persist, notify with the day key.
func (s *Service) SaveDay(ctx context.Context, day, content string) error {
	if strings.TrimSpace(day) == "" {
		return ErrEmptyDayKey
	}

	rec, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	doc, err := s.loadDocument(ctx, rec)
	if err != nil {
		return err
	}

	if strings.TrimSpace(content) == "" {
		doc.DeleteDay(day)
	} else {
		previous, _ := doc.Day(day)
		doc.SetDay(day, marker.Merge(previous, content))
	}

	if err := s.persist(ctx, rec, doc); err != nil {
		return err
	}

	s.publish(EventNoteSaved, day)
	s.logger.Debug("day saved", "day", day)
	return nil
}

// ClassifyDay labels every bullet of one day via the external classifier.
//
// With force unset, a day whose non-blank lines all carry markers is an
// idempotent no-op (Skipped=true). On success the day's entire content is
// replaced with the normalized, annotated bullet list; any formatting
// outside recognized bullets is discarded.
func (s *Service) ClassifyDay(ctx context.Context, day string, force bool) (ClassifyResult, error) {
	if strings.TrimSpace(day) == "" {
		return ClassifyResult{}, ErrEmptyDayKey
	}

	rec, err := s.settings.Load(ctx)
	if err != nil {
		return ClassifyResult{}, err
	}
	if rec.NotesPath == "" {
		return ClassifyResult{Reason: ReasonNoDocument}, nil
	}
	doc, err := s.loadDocument(ctx, rec)
	if err != nil {
		return ClassifyResult{}, err
	}

	set := taxonomy.NewSet(rec.CustomStates, rec.StateOverrides)
	res, err := s.classify(ctx, doc, set, day, force)
	if err != nil {
		return ClassifyResult{}, err
	}
	if !res.OK || res.Skipped {
		return res, nil
	}

	if err := s.persist(ctx, rec, doc); err != nil {
		return ClassifyResult{}, err
	}
	s.publish(EventNoteSaved, day)
	return res, nil
}

// ClassifyAll sweeps every day in document order, sequentially.
//
// Per-day failures (including classifier failures) are swallowed so the
// sweep proceeds; only the count of days actually updated is observable.
// The document is persisted once, and only if that count is nonzero,
// followed by a single global notification with no day key.
func (s *Service) ClassifyAll(ctx context.Context, force bool) (int, error) {
	rec, err := s.settings.Load(ctx)
	if err != nil {
		return 0, err
	}
	if rec.NotesPath == "" {
		return 0, ErrNoDocument
	}
	doc, err := s.loadDocument(ctx, rec)
	if err != nil {
		return 0, err
	}

	set := taxonomy.NewSet(rec.CustomStates, rec.StateOverrides)

	updated := 0
	for _, day := range doc.Keys() {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		res, err := s.classify(ctx, doc, set, day, force)
		if err != nil {
			s.logger.Warn("sweep: day failed", "day", day, "error", err)
			continue
		}
		if res.OK && !res.Skipped {
			updated++
		} else if !res.OK {
			s.logger.Debug("sweep: day skipped", "day", day, "reason", res.Reason)
		}
	}

	if updated == 0 {
		return 0, nil
	}
	if err := s.persist(ctx, rec, doc); err != nil {
		return 0, err
	}
	s.publish(EventNoteSaved, "")
	return updated, nil
}

// classify runs the per-day algorithm against an in-memory document,
// mutating it on success. It never persists or notifies; callers own
// that, which lets the bulk sweep batch all updates into one write.
func (s *Service) classify(ctx context.Context, doc *notes.Document, set *taxonomy.Set, day string, force bool) (ClassifyResult, error) {
	content, ok := doc.Day(day)
	if !ok || strings.TrimSpace(content) == "" {
		return ClassifyResult{Reason: ReasonEmptyDay}, nil
	}

	if !force && marker.AllMarked(content) {
		return ClassifyResult{OK: true, Skipped: true}, nil
	}

	normalized, bullets := marker.ExtractBullets(content)
	if len(bullets) == 0 {
		return ClassifyResult{Reason: ReasonNoBullets}, nil
	}

	if s.classifier == nil {
		return ClassifyResult{Reason: ReasonNoCredential}, nil
	}

	req := ClassifyRequest{Bullets: bullets}
	for _, st := range set.Snapshot() {
		if len(req.States) == snapshotCap {
			break
		}
		req.States = append(req.States, StateInfo{
			Code:        st.Code,
			Title:       st.Title,
			Description: st.Description,
		})
	}

	labels, err := s.classifier.Classify(ctx, req)
	if err != nil || labels == nil {
		if err != nil {
			s.logger.Warn("classifier failed", "day", day, "error", err)
		}
		return ClassifyResult{Reason: ReasonClassifyFailed}, nil
	}
	if len(labels) != len(bullets) {
		s.logger.Warn("classifier label count mismatch", "day", day, "labels", len(labels), "bullets", len(bullets))
		return ClassifyResult{Reason: ReasonClassifyFailed}, nil
	}

	// Labels are trusted as-is; there is no check that a label belongs
	// to the allowed code set.
	for i := range labels {
		labels[i] = strings.ToLower(labels[i])
	}

	annotated, err := marker.Apply(normalized, labels)
	if err != nil {
		return ClassifyResult{}, err
	}

	doc.SetDay(day, annotated)
	return ClassifyResult{OK: true}, nil
}

// States returns the composed taxonomy snapshot.
func (s *Service) States(ctx context.Context) ([]taxonomy.State, error) {
	rec, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	return taxonomy.NewSet(rec.CustomStates, rec.StateOverrides).Snapshot(), nil
}

// AddState creates a custom state with a collision-safe code and persists
// it. The finalized state is returned.
func (s *Service) AddState(ctx context.Context, title, description, color, code string) (taxonomy.State, error) {
	rec, err := s.settings.Load(ctx)
	if err != nil {
		return taxonomy.State{}, err
	}

	set := taxonomy.NewSet(rec.CustomStates, rec.StateOverrides)
	st := set.Add(strings.TrimSpace(title), description, color, code)

	rec.CustomStates = set.Customs()
	if err := s.settings.Save(ctx, rec); err != nil {
		return taxonomy.State{}, err
	}

	s.publish(EventStatesChanged, "")
	return st, nil
}

// UpdateState patches a custom in place or records an override patch for
// a default. Unknown codes fail with taxonomy.ErrUnknownState.
func (s *Service) UpdateState(ctx context.Context, code string, p taxonomy.Patch) error {
	rec, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}

	set := taxonomy.NewSet(rec.CustomStates, rec.StateOverrides)
	if err := set.Update(code, p); err != nil {
		return err
	}

	rec.CustomStates = set.Customs()
	rec.StateOverrides = set.Overrides()
	if err := s.settings.Save(ctx, rec); err != nil {
		return err
	}

	s.publish(EventStatesChanged, "")
	return nil
}

// DeleteState removes a custom state. Defaults are protected
// (taxonomy.ErrDefaultState); unknown codes fail too.
func (s *Service) DeleteState(ctx context.Context, code string) error {
	rec, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}

	set := taxonomy.NewSet(rec.CustomStates, rec.StateOverrides)
	if err := set.Delete(code); err != nil {
		return err
	}

	rec.CustomStates = set.Customs()
	if err := s.settings.Save(ctx, rec); err != nil {
		return err
	}

	s.publish(EventStatesChanged, "")
	return nil
}
