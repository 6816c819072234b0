// Package content loads the externally editable content table and resolves
// inbound text to a content record, either by exact command match or by
// keyword substring match.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"clinicbot/internal/database"
)

// NamePlaceholder is the token in response texts that is replaced with the
// user's display name at render time.
const NamePlaceholder = "{name}"

// ErrUnavailable indicates that the content table itself could not be
// fetched. It is distinct from a plain miss so callers can reply with a
// generic apology instead of a false "not found".
var ErrUnavailable = errors.New("content table unavailable")

// Record is one parsed content row. Keywords are lowercase-normalized;
// ButtonTexts and ButtonCommands are parallel lists whose pairing is
// validated at render time, not here.
type Record struct {
	Command        string
	Keywords       []string
	ResponseText   string
	MediaURL       string
	ButtonTexts    []string
	ButtonCommands []string
}

// RecordFromRow parses a raw table row into a Record. Comma-separated list
// columns are split and trimmed; empty elements are dropped.
func RecordFromRow(row database.ContentRow) Record {
	keywords := splitList(row.Keywords)
	for i, kw := range keywords {
		keywords[i] = strings.ToLower(kw)
	}

	return Record{
		Command:        row.Command,
		Keywords:       keywords,
		ResponseText:   row.ResponseText,
		MediaURL:       row.MediaURL,
		ButtonTexts:    splitList(row.ButtonTexts),
		ButtonCommands: splitList(row.ButtonCommands),
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Resolver answers content queries against the store. It is stateless and
// re-reads the full table on every call, so edits made to the table between
// dispatch cycles are always visible.
type Resolver struct {
	store  database.Store
	logger *slog.Logger
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(store database.Store, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{
		store:  store,
		logger: logger.With("component", "content_resolver"),
	}
}

// FindByCommand returns the first row (in table order) whose command equals
// the argument exactly, or nil if no row matches. Matching is case-sensitive
// and rows with an empty command never match.
func (r *Resolver) FindByCommand(ctx context.Context, command string) (*Record, error) {
	if command == "" {
		return nil, nil
	}

	rows, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.Command == command {
			rec := RecordFromRow(row)
			return &rec, nil
		}
	}

	r.logger.DebugContext(ctx, "No content row for command", "command", command)
	return nil, nil
}

// FindByKeyword lowercases the free text and returns the first row (in table
// order) with any keyword that is a substring of it, or nil on a miss.
// First matching row wins; there is no best-match ranking.
func (r *Resolver) FindByKeyword(ctx context.Context, freeText string) (*Record, error) {
	normalized := strings.ToLower(freeText)
	if strings.TrimSpace(normalized) == "" {
		return nil, nil
	}

	rows, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		rec := RecordFromRow(row)
		for _, kw := range rec.Keywords {
			if strings.Contains(normalized, kw) {
				r.logger.DebugContext(ctx, "Keyword match", "keyword", kw, "command", rec.Command)
				return &rec, nil
			}
		}
	}

	return nil, nil
}

func (r *Resolver) fetch(ctx context.Context) ([]database.ContentRow, error) {
	rows, err := r.store.GetContentRows(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Content table fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return rows, nil
}
