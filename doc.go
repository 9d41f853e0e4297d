// Package daybook is the Composition Root for the daybook application.
//
// It connects the core journal logic (Domain Layer) with the
// infrastructure adapters (Persistence and Classifier Layers) using the
// Hexagonal Architecture pattern.
//
// Philosophy:
//
// Daybook treats a single flat markdown file as a day-keyed journal
// database. Each day is a "## <key>" section of bullet lines, and each
// bullet can carry a trailing {code} category marker naming the life area
// it belongs to. An external text classifier fills those markers in;
// manual edits keep them via positional merging.
//
// Features:
//
//   - **Single-file store**: the whole document is read, rebuilt and
//     atomically replaced on every operation.
//   - **Marker merging**: plain text edits preserve prior classifications
//     as long as bullet count and order are unchanged.
//   - **Taxonomy**: six fixed default categories, per-default overrides,
//     and user-added customs with collision-safe short codes.
//   - **Classification**: idempotent per-day labeling and a bulk sweep
//     with per-day failure isolation.
//   - **Extensible**: storage, settings and classifier are ports; the
//     default adapters use the filesystem, a YAML settings file and an
//     OpenAI-compatible endpoint.
//
// Usage:
//
//	svc, err := daybook.New(
//		daybook.WithLogger(logger),
//	)
//
//	// Save a day's bullets (markers from the previous version are
//	// carried over by position)
//	err = svc.SaveDay(ctx, "2024-01-01", "- Ran 5k\n- Paid rent")
//
//	// Ask the classifier to label the day
//	res, err := svc.ClassifyDay(ctx, "2024-01-01", false)
package daybook
