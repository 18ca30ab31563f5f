// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. Tags and
// metadata are stored as JSON documents.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *noteRepository) Get(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(sq.Eq{"id": noteID})
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Get").
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, err
	}

	return note, nil
}

func (r *noteRepository) ListByVault(ctx context.Context, vaultID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(sq.Eq{"vault_id": vaultID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByVault").
			Str("vault_id", vaultID).
			Msg("failed to execute query for notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.ListByVault").Msg("failed to scan note row")
			return nil, scanErr
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (r *noteRepository) Upsert(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	tags, err := encodeJSONColumn(note.Tags, "[]")
	if err != nil {
		return err
	}
	metadata, err := encodeJSONColumn(note.Metadata, "{}")
	if err != nil {
		return err
	}

	query, args, err := buildUpsertNoteQuery(note, tags, metadata)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Upsert").
			Str("note_id", note.ID).
			Str("vault_id", note.VaultID).
			Msg("failed to upsert note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *noteRepository) Delete(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(tableNotes).Where(sq.Eq{"id": noteID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "noteRepository.Delete").Str("note_id", noteID).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *noteRepository) MarkSynced(ctx context.Context, noteID string, synced bool) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(tableNotes).
		Set("is_synced", synced).
		Where(sq.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.MarkSynced").Str("note_id", noteID).Msg("failed to update note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note     models.Note
		tags     string
		metadata string
	)
	err := row.Scan(
		&note.ID,
		&note.VaultID,
		&note.Title,
		&note.Content,
		&tags,
		&metadata,
		&note.CreatedAt,
		&note.UpdatedAt,
		&note.IsSynced,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, err
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = decodeJSONColumn(tags, &note.Tags); err != nil {
		return models.Note{}, err
	}
	if err = decodeJSONColumn(metadata, &note.Metadata); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func encodeJSONColumn(v any, empty string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	if string(b) == "null" {
		return empty, nil
	}
	return string(b), nil
}

func decodeJSONColumn(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return nil
}
