package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"astrogen/domain/core"
	"astrogen/domain/genetics"
	"astrogen/ports"
)

// variantRepository implements the VariantStore port over Postgres.
type variantRepository struct {
	db *sqlx.DB
}

// NewVariantRepository creates a new variant repository
func NewVariantRepository(db *sqlx.DB) ports.VariantStore {
	return &variantRepository{db: db}
}

// Connect opens and pings a Postgres connection.
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

type variantRow struct {
	Gene       string  `db:"gene"`
	RSID       string  `db:"rs_id"`
	Genotype   string  `db:"genotype"`
	EffectSize float64 `db:"effect_size"`
}

// Variants retrieves a sample's variant calls, ordered by rsID for
// deterministic downstream scoring.
func (r *variantRepository) Variants(ctx context.Context, sampleID core.SampleID) ([]genetics.GeneticVariant, error) {
	query := `SELECT gene, rs_id, genotype, effect_size
		FROM genetic_variants
		WHERE sample_id = $1
		ORDER BY rs_id`

	var rows []variantRow
	if err := r.db.SelectContext(ctx, &rows, query, sampleID.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewSampleNotFoundError(sampleID.String())
		}
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	if len(rows) == 0 {
		return nil, core.NewSampleNotFoundError(sampleID.String())
	}

	variants := make([]genetics.GeneticVariant, len(rows))
	for i, row := range rows {
		variants[i] = genetics.GeneticVariant{
			Gene:       row.Gene,
			RSID:       row.RSID,
			Genotype:   genetics.Genotype(row.Genotype),
			EffectSize: row.EffectSize,
		}
	}
	return variants, nil
}
