package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/quaver/internal/db"
	"github.com/llehouerou/quaver/internal/playlist"
)

// QueueTrack represents a track in the saved queue.
type QueueTrack struct {
	EntryID     string
	Path        string
	Title       string
	Artist      string
	Album       string
	AlbumID     string
	TrackNumber int
	Duration    time.Duration
}

// QueueState represents the saved queue state.
type QueueState struct {
	CurrentIndex int
	RepeatMode   int
	Shuffle      bool
	SortColumn   int
	SortOrder    int
	Tracks       []QueueTrack
}

// QueueStateFrom captures q for saving.
func QueueStateFrom(q *playlist.PlayingQueue) QueueState {
	tracks := q.Tracks()
	saved := make([]QueueTrack, len(tracks))
	for i, t := range tracks {
		saved[i] = QueueTrack{
			EntryID:     t.ID,
			Path:        t.Path,
			Title:       t.Title,
			Artist:      t.Artist,
			Album:       t.Album,
			AlbumID:     t.AlbumID,
			TrackNumber: t.TrackNumber,
			Duration:    t.Duration,
		}
	}
	column, order := q.Sort()
	return QueueState{
		CurrentIndex: q.CurrentIndex(),
		RepeatMode:   int(q.RepeatMode()),
		Shuffle:      q.Shuffle(),
		SortColumn:   int(column),
		SortOrder:    int(order),
		Tracks:       saved,
	}
}

// ApplyTo loads the saved queue into q. The shuffled order is rebuilt, not
// restored.
func (s QueueState) ApplyTo(q *playlist.PlayingQueue) {
	tracks := make([]playlist.Track, len(s.Tracks))
	for i, t := range s.Tracks {
		id := t.EntryID
		if id == "" {
			id = playlist.NewID()
		}
		albumID := t.AlbumID
		if albumID == "" {
			albumID = playlist.AlbumKey(t.Artist, t.Album, t.Path)
		}
		tracks[i] = playlist.Track{
			ID:          id,
			Path:        t.Path,
			Title:       t.Title,
			Artist:      t.Artist,
			Album:       t.Album,
			AlbumID:     albumID,
			TrackNumber: t.TrackNumber,
			Duration:    t.Duration,
		}
	}

	q.Replace(tracks...)
	switch {
	case s.CurrentIndex < 0:
		q.Stop()
	case s.CurrentIndex < len(tracks):
		q.JumpTo(s.CurrentIndex)
	}
	q.SetRepeatMode(playlist.RepeatMode(s.RepeatMode))
	if s.Shuffle {
		q.SetShuffle(true)
	}
	q.SortBy(playlist.SortColumn(s.SortColumn), playlist.SortOrder(s.SortOrder))
}

func getQueue(db *sql.DB) (*QueueState, error) {
	// Get queue state
	var st QueueState
	row := db.QueryRow(`
		SELECT current_index, repeat_mode, shuffle, sort_column, sort_order
		FROM queue_state WHERE id = 1
	`)
	err := row.Scan(&st.CurrentIndex, &st.RepeatMode, &st.Shuffle, &st.SortColumn, &st.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return &QueueState{CurrentIndex: -1}, nil
	}
	if err != nil {
		return nil, err
	}

	// Get tracks
	rows, err := db.Query(`
		SELECT entry_id, path, title, artist, album, album_id, track_number, duration_ms
		FROM queue_tracks
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t QueueTrack
		var artist, album, albumID sql.NullString
		var trackNumber, durationMS sql.NullInt64

		err := rows.Scan(&t.EntryID, &t.Path, &t.Title, &artist, &album, &albumID, &trackNumber, &durationMS)
		if err != nil {
			return nil, err
		}

		t.Artist = dbutil.NullStringValue(artist)
		t.Album = dbutil.NullStringValue(album)
		t.AlbumID = dbutil.NullStringValue(albumID)
		t.TrackNumber = int(dbutil.NullInt64Value(trackNumber))
		t.Duration = time.Duration(dbutil.NullInt64Value(durationMS)) * time.Millisecond
		st.Tracks = append(st.Tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &st, nil
}

func saveQueue(sqlDB *sql.DB, state QueueState) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		// Clear existing queue
		if _, err := tx.Exec(`DELETE FROM queue_tracks`); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO queue_state (id, current_index, repeat_mode, shuffle, sort_column, sort_order)
			VALUES (1, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				repeat_mode = excluded.repeat_mode,
				shuffle = excluded.shuffle,
				sort_column = excluded.sort_column,
				sort_order = excluded.sort_order
		`, state.CurrentIndex, state.RepeatMode, state.Shuffle, state.SortColumn, state.SortOrder)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO queue_tracks
				(position, entry_id, path, title, artist, album, album_id, track_number, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range state.Tracks {
			_, err = stmt.Exec(i, t.EntryID, t.Path, t.Title,
				dbutil.NullString(t.Artist), dbutil.NullString(t.Album), dbutil.NullString(t.AlbumID),
				t.TrackNumber, t.Duration.Milliseconds())
			if err != nil {
				return err
			}
		}
		return nil
	})
}
