package pgx

import (
	"context"

	"github.com/patternkit/lattice/pkg/common"

	pgxv5 "github.com/jackc/pgx/v5"

	"golang.org/x/sync/errgroup"
)

type pgxIConn interface {
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
}

// CatalogStore reads the component catalog from PostgreSQL. It owns no
// schema: tables are created and populated by the ingestion collaborator,
// and every query here is a plain read.
type CatalogStore struct {
	conn pgxIConn
}

// NewCatalogStore creates a CatalogStore on an existing connection or pool.
func NewCatalogStore(conn pgxIConn) *CatalogStore {
	return &CatalogStore{conn: conn}
}

const (
	selectComponents = `
		SELECT id, name, title, complexity, requires_script
		FROM components
		ORDER BY id`

	selectTags = `
		SELECT component_id, tag, tag_type
		FROM component_tags
		ORDER BY component_id, tag`

	selectGuidance = `
		SELECT component_id, content
		FROM component_guidance
		ORDER BY component_id`

	selectSamples = `
		SELECT component_id, code
		FROM component_samples
		ORDER BY component_id`
)

// LoadSnapshot reads components, tag assignments and free text in parallel
// and assembles them into one immutable snapshot. Storage failures come
// back as UpstreamReadFailure; the caller decides whether to repeat the
// read.
func (s *CatalogStore) LoadSnapshot(ctx context.Context) (*common.Snapshot, error) {
	var (
		components []common.Component
		tags       []common.TagAssignment
		guidance   []common.Note
		samples    []common.Note
	)

	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		components, err = s.loadComponents(ectx)
		return err
	})
	eg.Go(func() error {
		var err error
		tags, err = s.loadTags(ectx)
		return err
	})
	eg.Go(func() error {
		var err error
		guidance, err = s.loadNotes(ectx, selectGuidance, common.NoteGuidance)
		return err
	})
	eg.Go(func() error {
		var err error
		samples, err = s.loadNotes(ectx, selectSamples, common.NoteSample)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, common.UpstreamError(err, "failed to load catalog snapshot")
	}

	return common.NewSnapshot(components, tags, append(guidance, samples...)), nil
}

func (s *CatalogStore) loadComponents(ctx context.Context) ([]common.Component, error) {
	rows, err := s.conn.Query(ctx, selectComponents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []common.Component
	for rows.Next() {
		var c common.Component
		var complexity string
		if err := rows.Scan(&c.ID, &c.Name, &c.Title, &complexity, &c.RequiresScript); err != nil {
			return nil, err
		}
		c.Complexity = common.Complexity(complexity)
		components = append(components, c)
	}
	return components, rows.Err()
}

func (s *CatalogStore) loadTags(ctx context.Context) ([]common.TagAssignment, error) {
	rows, err := s.conn.Query(ctx, selectTags)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []common.TagAssignment
	for rows.Next() {
		var t common.TagAssignment
		var tagType string
		if err := rows.Scan(&t.ComponentID, &t.Tag, &tagType); err != nil {
			return nil, err
		}
		t.Type = common.TagType(tagType)
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (s *CatalogStore) loadNotes(ctx context.Context, query string, kind common.NoteKind) ([]common.Note, error) {
	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []common.Note
	for rows.Next() {
		note := common.Note{Kind: kind}
		if err := rows.Scan(&note.ComponentID, &note.Text); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}
