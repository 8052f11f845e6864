package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/Cyberdad247/Auralis-Transcriptor/internal/ports"
)

type transcriptRepo struct {
	db *sql.DB
}

func NewTranscriptRepo(db *sql.DB) ports.TranscriptRepo {
	return &transcriptRepo{db: db}
}

func (r *transcriptRepo) Create(ctx context.Context, rec *ports.TranscriptRecord) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO transcriptions (provider, language, text_content, confidence, duration, filename, audio_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, rec.Provider, rec.Language, rec.Text, rec.Confidence, rec.Duration, rec.Filename, rec.AudioURL, time.Now()).Scan(&id)
	return id, err
}

func (r *transcriptRepo) ListRecent(ctx context.Context, limit int) ([]ports.TranscriptRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, provider, language, text_content, confidence, duration, filename, audio_url, created_at
		FROM transcriptions
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ports.TranscriptRecord
	for rows.Next() {
		var rec ports.TranscriptRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Provider,
			&rec.Language,
			&rec.Text,
			&rec.Confidence,
			&rec.Duration,
			&rec.Filename,
			&rec.AudioURL,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
